// Package rv implements the ProPresenter 7 wire message schema.
//
// ProPresenter documents (.pro) and playlists (.proplaylist) are protobuf
// messages. The upstream .proto sources are proprietary and not distributed,
// so this package carries hand-rolled codecs built directly on
// google.golang.org/protobuf/encoding/protowire. Each message type knows how
// to marshal and unmarshal itself field by field.
//
// # Unknown field passthrough
//
// Every message retains fields it does not model as raw bytes and re-emits
// them verbatim on marshal. Reading a file written by ProPresenter, changing
// one field, and writing it back therefore preserves everything this package
// never touched. This matters: the format is versioned and undocumented, and
// degrading unmodeled fields to defaults corrupts files for the host
// application.
//
// # Oneof fields
//
// Polymorphic fields (action payloads, media type properties, text fills,
// URL storage, playlist children) are sealed interfaces with one concrete
// type per variant. Encoders type-switch exhaustively.
package rv
