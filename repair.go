package kvlog

import (
	"bytes"
	"os"
)

// repairPartialLine truncates the file back to the last record that
// ends with '\n'. A crash between the write call and the bytes landing
// on disk can leave a final line without its newline; without repair
// that line fails every scan. Lines that end with '\n' are kept as-is,
// malformed or not.
func repairPartialLine(file *os.File) error {
	info, err := file.Stat()
	if err != nil {
		return err
	}
	size := info.Size()
	if size == 0 {
		return nil
	}

	// walk backwards in chunks looking for the last newline
	buf := make([]byte, 4096)
	end := size
	for end > 0 {
		n := int64(len(buf))
		if n > end {
			n = end
		}
		if _, err := file.ReadAt(buf[:n], end-n); err != nil {
			return err
		}
		if idx := bytes.LastIndexByte(buf[:n], '\n'); idx >= 0 {
			cut := end - n + int64(idx) + 1
			if cut == size {
				// file already ends with a complete line
				return nil
			}
			return file.Truncate(cut)
		}
		end -= n
	}
	// no newline at all: the whole file is one partial line
	return file.Truncate(0)
}
