package consoleapp

import "strings"

// OutPath derives an output path from in and the "extension" argument: the
// extension of the last path element is replaced by the argument's first
// value. A value without a leading dot gets one, and "." removes the
// extension. in is returned unchanged when no extension argument is declared
// or set, or before the arguments are checked.
func (d *Driver) OutPath(in string) string {
	arg := d.usage.Argument("extension")
	if arg == nil || !d.checked {
		return in
	}
	vals := arg.Values()
	if len(vals) == 0 {
		return in
	}
	return replaceExtension(in, vals[0])
}

func replaceExtension(path, ext string) string {
	start := strings.LastIndexAny(path, `/\`) + 1
	// A leading dot names a hidden file, not an extension.
	if dot := strings.LastIndexByte(path[start:], '.'); dot > 0 {
		path = path[:start+dot]
	}
	switch {
	case ext == "" || ext == ".":
		return path
	case !strings.HasPrefix(ext, "."):
		return path + "." + ext
	default:
		return path + ext
	}
}
