package service

import (
	"crypto/rand"
	"fmt"
	"io"
	"strconv"
	"time"
)

const (
	prefixTrx      = "TRX"
	prefixExternal = "EXT"

	randomSuffixLen = 13
	base36Alphabet  = "0123456789abcdefghijklmnopqrstuvwxyz"

	// gatewayTimeLayout renders the fixed +07:00 offset expected by the gateway.
	gatewayTimeLayout = "2006-01-02T15:04:05-07:00"
)

// jakarta is a fixed zone so the offset never depends on the host tz database.
var jakarta = time.FixedZone("WIB", 7*60*60)

// IdentifierService implements ports.IdentifierGenerator.
// IDs are "{PREFIX}-{unixMillis}-{13 base36 chars}". They are not guaranteed
// globally unique; callers that need that must dedupe on trxId.
type IdentifierService struct {
	now    func() time.Time
	random io.Reader
}

// NewIdentifierService uses the system clock and crypto/rand.
func NewIdentifierService() *IdentifierService {
	return NewIdentifierServiceWith(time.Now, rand.Reader)
}

// NewIdentifierServiceWith allows a fixed clock and random source in tests.
func NewIdentifierServiceWith(now func() time.Time, random io.Reader) *IdentifierService {
	return &IdentifierService{now: now, random: random}
}

func (s *IdentifierService) TrxID() string {
	return s.newID(prefixTrx)
}

func (s *IdentifierService) ExternalID() string {
	return s.newID(prefixExternal)
}

// Timestamp returns the current time as ISO8601 at +07:00.
func (s *IdentifierService) Timestamp() string {
	return FormatGatewayTime(s.now())
}

// Expiry returns now + hours as ISO8601 at +07:00.
func (s *IdentifierService) Expiry(hours int) string {
	return FormatGatewayTime(s.now().Add(time.Duration(hours) * time.Hour))
}

// FormatGatewayTime renders t in the gateway's fixed +07:00 offset.
func FormatGatewayTime(t time.Time) string {
	return t.In(jakarta).Format(gatewayTimeLayout)
}

func (s *IdentifierService) newID(prefix string) string {
	now := s.now()
	return fmt.Sprintf("%s-%d-%s", prefix, now.UnixMilli(), s.randomBase36(now))
}

// randomBase36 draws randomSuffixLen characters with rejection sampling so
// every symbol is equally likely.
func (s *IdentifierService) randomBase36(now time.Time) string {
	out := make([]byte, 0, randomSuffixLen)
	buf := make([]byte, randomSuffixLen*2)
	for len(out) < randomSuffixLen {
		if _, err := io.ReadFull(s.random, buf); err != nil {
			return fallbackSuffix(now)
		}
		for _, b := range buf {
			if b >= 252 { // 252 = 36*7
				continue
			}
			out = append(out, base36Alphabet[b%36])
			if len(out) == randomSuffixLen {
				break
			}
		}
	}
	return string(out)
}

// fallbackSuffix is used only when the random source fails.
func fallbackSuffix(now time.Time) string {
	s := strconv.FormatInt(now.UnixNano(), 36)
	for len(s) < randomSuffixLen {
		s = "0" + s
	}
	return s[len(s)-randomSuffixLen:]
}
