package kvlog

import "strings"

// encodeRecord appends `<key>,<value>\n` to buf and returns it.
// perf: caller re-uses buf across appends
func encodeRecord(buf []byte, key, value string) []byte {
	buf = append(buf, key...)
	buf = append(buf, ',')
	buf = append(buf, value...)
	buf = append(buf, '\n')
	return buf
}

// splitRecord splits a record line into key and value text on the
// first comma. Keys can't contain commas so the split is unambiguous;
// values can, which is why only the first comma counts.
func splitRecord(line string, lineNo int) (string, string, error) {
	idx := strings.IndexByte(line, ',')
	if idx == -1 {
		return "", "", lineErr(lineNo, line)
	}
	return line[:idx], line[idx+1:], nil
}
