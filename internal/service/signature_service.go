package service

import (
	"bytes"
	"crypto"
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	"account-storefront/pkg/apperror"
)

const pemPrefix = "-----BEGIN"

// GatewaySignatureService implements ports.SignatureService.
// Outbound requests are RSA-SHA256 signed over the colon form; inbound
// callbacks are HMAC-SHA256 verified over the newline form.
type GatewaySignatureService struct{}

// NewSignatureService creates a new gateway signature service.
func NewSignatureService() *GatewaySignatureService {
	return &GatewaySignatureService{}
}

// BuildStringToSign constructs the outbound canonical string.
// Format: METHOD:PATH:lowercase_hex(SHA256(minified body)):TIMESTAMP
func (s *GatewaySignatureService) BuildStringToSign(method, path string, body interface{}, timestamp string) (string, error) {
	minified, err := MinifyJSON(body)
	if err != nil {
		return "", fmt.Errorf("minify body: %w", err)
	}
	digest := sha256.Sum256(minified)
	return fmt.Sprintf("%s:%s:%s:%s", method, path, hex.EncodeToString(digest[:]), timestamp), nil
}

// SignAsymmetric signs stringToSign with RSA-SHA256 (PKCS#1 v1.5) and returns base64.
// Errors wrap apperror.ErrSignatureGeneration.
func (s *GatewaySignatureService) SignAsymmetric(stringToSign string, privateKey string) (string, error) {
	key, err := parseRSAPrivateKey(privateKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperror.ErrSignatureGeneration, err)
	}
	digest := sha256.Sum256([]byte(stringToSign))
	sig, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, digest[:])
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperror.ErrSignatureGeneration, err)
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}

// VerifyAsymmetric checks a base64 RSA-SHA256 signature against publicKey.
func (s *GatewaySignatureService) VerifyAsymmetric(stringToSign string, signature string, publicKey string) bool {
	key, err := parseRSAPublicKey(publicKey)
	if err != nil {
		return false
	}
	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}
	digest := sha256.Sum256([]byte(stringToSign))
	return rsa.VerifyPKCS1v15(key, crypto.SHA256, digest[:], sig) == nil
}

// BuildCallbackStringToSign constructs the callback canonical string.
// Format: POST\nPATH\nCOMPACT_BODY\nTIMESTAMP
func (s *GatewaySignatureService) BuildCallbackStringToSign(path string, body []byte, timestamp string) (string, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err != nil {
		return "", fmt.Errorf("compact callback body: %w", err)
	}
	return "POST\n" + path + "\n" + buf.String() + "\n" + timestamp, nil
}

// SignSymmetric computes HMAC-SHA256 of stringToSign using secret.
// Returns lowercase hex-encoded signature.
func (s *GatewaySignatureService) SignSymmetric(secret string, stringToSign string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(stringToSign))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyCallback rebuilds the callback string-to-sign and compares HMACs in constant time.
// Any failure, including an unparseable body, yields false.
func (s *GatewaySignatureService) VerifyCallback(body []byte, timestamp string, signature string, secret string, path string) bool {
	if signature == "" || secret == "" {
		return false
	}
	stringToSign, err := s.BuildCallbackStringToSign(path, body, timestamp)
	if err != nil {
		return false
	}
	expected := s.SignSymmetric(secret, stringToSign)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signature)))
}

// MinifyJSON returns the body as JSON without insignificant whitespace.
// Raw bytes are compacted as-is; other values are encoded with HTML escaping
// disabled so that "<", ">" and "&" survive unchanged.
func MinifyJSON(body interface{}) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return []byte("null"), nil
	case []byte:
		return compactJSON(b)
	case json.RawMessage:
		return compactJSON(b)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func compactJSON(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeKeyMaterial returns PEM bytes. Keys distributed as base64-wrapped PEM
// are unwrapped first; escaped "\n" sequences from env files are restored.
func decodeKeyMaterial(material string) ([]byte, error) {
	material = strings.TrimSpace(material)
	if material == "" {
		return nil, errors.New("key material is empty")
	}
	if !strings.HasPrefix(material, pemPrefix) {
		decoded, err := base64.StdEncoding.DecodeString(material)
		if err != nil {
			return nil, fmt.Errorf("decode base64 key: %w", err)
		}
		material = strings.TrimSpace(string(decoded))
	}
	material = strings.ReplaceAll(material, `\n`, "\n")
	if !strings.HasPrefix(material, pemPrefix) {
		return nil, errors.New("key material is not PEM encoded")
	}
	return []byte(material), nil
}

func parseRSAPrivateKey(material string) (*rsa.PrivateKey, error) {
	raw, err := decodeKeyMaterial(material)
	if err != nil {
		return nil, err
	}
	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, errors.New("failed to decode PEM block containing private key")
	}

	if parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		key, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, errors.New("private key is not RSA")
		}
		return key, nil
	}

	key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	return key, nil
}

func parseRSAPublicKey(material string) (*rsa.PublicKey, error) {
	raw, err := decodeKeyMaterial(material)
	if err != nil {
		return nil, err
	}
	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, errors.New("failed to decode PEM block containing public key")
	}

	if parsed, err := x509.ParsePKIXPublicKey(block.Bytes); err == nil {
		key, ok := parsed.(*rsa.PublicKey)
		if !ok {
			return nil, errors.New("public key is not RSA")
		}
		return key, nil
	}

	key, err := x509.ParsePKCS1PublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	return key, nil
}
