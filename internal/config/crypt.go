package config

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

// WARNING: This encryption key should be securely stored and rotated periodically.
// It only keeps the API key from sitting in the settings file as plain text.
var encryptionKey = []byte("32-byte-long-encryption-key-here")

// Encrypt encrypts plaintext with AES-CFB and returns it base64 encoded.
func Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return "", err
	}

	ciphertext := make([]byte, aes.BlockSize+len(plaintext))
	iv := ciphertext[:aes.BlockSize]
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", err
	}

	stream := cipher.NewCFBEncrypter(block, iv)
	stream.XORKeyStream(ciphertext[aes.BlockSize:], []byte(plaintext))

	return base64.URLEncoding.EncodeToString(ciphertext), nil
}

// Decrypt reverses Encrypt. It fails on input that is not base64 or is too
// short to carry an IV, which is how Load detects plain-text keys.
func Decrypt(ciphertext string) (string, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return "", err
	}

	decryptedData, err := base64.URLEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", err
	}

	if len(decryptedData) < aes.BlockSize {
		return "", errors.New("ciphertext too short")
	}

	iv := decryptedData[:aes.BlockSize]
	decryptedData = decryptedData[aes.BlockSize:]

	stream := cipher.NewCFBDecrypter(block, iv)
	stream.XORKeyStream(decryptedData, decryptedData)

	return string(decryptedData), nil
}
