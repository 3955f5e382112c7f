package dma

import "unsafe"

// unsafePointer returns the address of the first byte of the slice.
func unsafePointer(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}
