// Package codec converts between binary crypto material and the text that
// ends up in CSV files.
//
// Two layers live here:
//   - the base64 text codec ([EncodeToString], [DecodeString]) used for
//     nonces, salts and ciphertexts;
//   - the CSV payload codec ([PayloadCodec]) that turns a whole plaintext CSV
//     document into a single "<nonce>:<ciphertext>" line and back.
//
// The payload codec treats CSV as an opaque string and knows nothing about
// rows, columns or delimiters.
package codec
