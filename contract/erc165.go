package contract

// ERC-165 interface identifiers
var (
	InterfaceERC165           = [4]byte{0x01, 0xff, 0xc9, 0xa7}
	InterfaceERC721           = [4]byte{0x80, 0xac, 0x58, 0xcd}
	InterfaceERC721Metadata   = [4]byte{0x5b, 0x5e, 0x13, 0x9f}
	InterfaceERC721Enumerable = [4]byte{0x78, 0x0e, 0x9d, 0x63}
	InterfaceERC2981          = [4]byte{0x2a, 0x55, 0x20, 0x5a}
)

// SupportsInterface reports whether the drop implements the interface with
// the given ERC-165 identifier. 0xffffffff is never supported.
func SupportsInterface(id [4]byte) bool {
	switch id {
	case InterfaceERC165, InterfaceERC721, InterfaceERC721Metadata,
		InterfaceERC721Enumerable, InterfaceERC2981:
		return true
	}
	return false
}
