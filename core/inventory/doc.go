// Package inventory handles the collection envelope that wraps lshw output
// and the JSON codec shared by the analyzer, normalizer, and validator.
//
// # Envelope Shape
//
// Every document is a JSON object of the form:
//
//	{
//	    "hardware": {
//	        "node": "<collector node identifier>",
//	        "data": { ...lshw output... },
//	        "error": ""
//	    }
//	}
//
// The data object must carry "id" and "class" fields to count as genuine
// lshw output. Documents that do not match this shape are rejected outright,
// as opposed to documents that parse but merely have type defects.
//
// # Number Handling
//
// Decode uses json.Number throughout, so numeric literals survive a
// decode/encode round trip byte for byte: a size recorded as 1.50 is
// written back as 1.50, not 1.5.
//
// # Change Detection
//
// Digest hashes a document's compact serialization with BLAKE3. Object keys
// marshal in sorted order, so two documents with the same content digest
// identically regardless of source key order.
package inventory
