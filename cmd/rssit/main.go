// ABOUTME: C API of the RSS-It library, built with -buildmode=c-shared
// ABOUTME: Exports the binary (validate/parse/free_result) and legacy JSON (validateFeed/parseFeeds) symbols

package main

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"

import (
	"unsafe"

	"rss-it-library/bridge"
)

//export validate
func validate(data *C.char, length C.int) *C.char {
	return copyToC(bridge.Validate(goBytes(data, length)))
}

//export parse
func parse(data *C.char, length C.int) *C.char {
	return copyToC(bridge.Parse(goBytes(data, length)))
}

//export free_result
func free_result(ptr *C.char) {
	if ptr == nil {
		return
	}
	C.free(unsafe.Pointer(ptr))
}

//export validateFeed
func validateFeed(feedURL *C.char) C.int {
	if feedURL == nil {
		return 0
	}
	if bridge.ValidateURL(C.GoString(feedURL)) {
		return 1
	}
	return 0
}

//export parseFeeds
func parseFeeds(feedURLs *C.char) *C.char {
	var input string
	if feedURLs != nil {
		input = C.GoString(feedURLs)
	}

	out := bridge.ParseJSON(input)

	// NUL-terminated copy
	buf := make([]byte, len(out)+1)
	copy(buf, out)
	return copyToC(buf)
}

//export rssit_shutdown
func rssit_shutdown() {
	_ = bridge.Shutdown()
}

// goBytes copies the request buffer; NULL or a negative length reads as empty
func goBytes(data *C.char, length C.int) []byte {
	if data == nil || length <= 0 {
		return nil
	}
	return C.GoBytes(unsafe.Pointer(data), length)
}

// copyToC allocates C memory owned by the caller and copies data into it
func copyToC(data []byte) *C.char {
	if len(data) == 0 {
		return nil
	}

	ptr := C.malloc(C.size_t(len(data)))
	if ptr == nil {
		return nil
	}

	C.memcpy(ptr, unsafe.Pointer(&data[0]), C.size_t(len(data)))
	return (*C.char)(ptr)
}

func main() {}
