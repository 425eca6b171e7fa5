package shipping

import (
	"encoding/base64"
	"strings"
	"testing"

	"returnwiz/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRLabelService_GenerateLabel(t *testing.T) {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M"}}
	svc := NewQRLabelService(cfg)

	labelURL, qrCodeURL, err := svc.GenerateLabel("RW-0123456789ABCDEF0123456789ABCDEF")
	require.NoError(t, err)

	// No carrier integration yet, so no label URL.
	assert.Empty(t, labelURL)

	require.True(t, strings.HasPrefix(qrCodeURL, "data:image/png;base64,"))
	payload := strings.TrimPrefix(qrCodeURL, "data:image/png;base64,")
	decoded, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)

	// PNG magic bytes.
	require.GreaterOrEqual(t, len(decoded), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, decoded[:4])
}

func TestQRLabelService_DefaultsWithoutConfig(t *testing.T) {
	svc := NewQRLabelService(nil)

	_, qrCodeURL, err := svc.GenerateLabel("RW-TEST")
	require.NoError(t, err)
	assert.NotEmpty(t, qrCodeURL)
}
