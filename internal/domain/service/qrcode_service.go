package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateListingQR encodes a listing share link as a PNG QR code
	GenerateListingQR(link string) ([]byte, error)
}
