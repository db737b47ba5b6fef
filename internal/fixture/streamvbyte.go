package fixture

// svbControlBlockSizeLUT holds the number of data bytes described by each
// StreamVByte control byte. Each control byte covers four values with two
// bits apiece (code+1 = byte length).
var svbControlBlockSizeLUT [256]uint8

func init() {
	for ctrl := range 256 {
		size := (ctrl & 0x03) + ((ctrl >> 2) & 0x03) + ((ctrl >> 4) & 0x03) + (ctrl >> 6) + 4
		svbControlBlockSizeLUT[ctrl] = uint8(size)
	}
}

// svbEncodedLen returns the total size (control plus data bytes) that the
// control bytes at the start of svbData describe for count values, or -1 if
// svbData is too short to hold the control bytes. Decode checks it against
// the frame length so the decoder never reads past the frame.
func svbEncodedLen(svbData []byte, count int) int {
	numControlBytes := (count + 3) >> 2
	if len(svbData) < numControlBytes {
		return -1
	}
	control := svbData[:numControlBytes]
	full := count >> 2
	size := numControlBytes
	for _, ctrl := range control[:full] {
		size += int(svbControlBlockSizeLUT[ctrl])
	}
	// A partial last group only describes its first count%4 values.
	if rem := count & 0x03; rem != 0 {
		ctrl := control[full]
		for i := 0; i < rem; i++ {
			size += int((ctrl>>(i*2))&0x03) + 1
		}
	}
	return size
}
