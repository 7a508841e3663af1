// Package uart frames link packets over a raw byte stream such as a
// serial console. Frames are SOF-delimited with a sequence byte, a
// length byte and an XOR checksum; the parser resynchronizes on any
// corrupted input by hunting for the next SOF.
package uart
