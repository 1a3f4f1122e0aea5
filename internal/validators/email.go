package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks that the domain behind a registration email
// actually receives mail: an MX record, or failing that any A/AAAA
// record. Enabled via VERIFY_EMAIL_DOMAIN; it costs a DNS round trip per
// registration.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := strings.ToLower(email[at+1:])

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	// Some small providers publish no MX and take mail on the A record.
	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
