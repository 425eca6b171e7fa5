package service

// TrackingNumberGenerator produces placeholder tracking numbers until a real
// carrier issues them. Generated values must be unique for all practical
// purposes; the returns store additionally enforces uniqueness with a
// database constraint.
type TrackingNumberGenerator interface {
	// Generate returns a new tracking number: a fixed prefix plus a random
	// suffix. Not required to be cryptographically secure.
	Generate() string
}

// LabelService produces the shipping assets attached to a new return order.
// The real implementation will call the carrier's label API; today it only
// renders a drop-off QR code locally.
type LabelService interface {
	// GenerateLabel returns the label URL and the QR code URL for a tracking
	// number. Either value may be empty when the underlying provider cannot
	// supply it yet.
	GenerateLabel(trackingNumber string) (labelURL string, qrCodeURL string, err error)
}
