package utils

import (
	"bytes"
	"encoding/hex"
	"image"
	"image/png"

	"golang.org/x/crypto/blake2b"
)

// EncodePNG encodes img and returns the bytes with their blake2b-256 sum.
func EncodePNG(img image.Image) ([]byte, string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), Sum(buf.Bytes()), nil
}

func Sum(b []byte) string {
	s := blake2b.Sum256(b)
	return hex.EncodeToString(s[:])
}
