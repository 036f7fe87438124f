package detector

import (
	"net/url"
	"strings"

	"github.com/reshetovitsme/chat-moderator/internal/modules/lock/domain"
	message "github.com/reshetovitsme/chat-moderator/internal/modules/message/domain"
	"golang.org/x/net/publicsuffix"
)

var inviteHosts = map[string]struct{}{
	"t.me":         {},
	"telegram.me":  {},
	"telegram.dog": {},
}

// URL detects links that are neither allowlisted by exact URL nor by domain
func URL() Detector {
	return detectorFunc{
		lockType: domain.LockTypeUrl,
		detect: func(msg *message.Message, dc *domain.DetectionContext) bool {
			for _, link := range msg.Links() {
				if !linkAllowed(link, dc) {
					return true
				}
			}
			return false
		},
	}
}

// Invite detects chat invite links that are not allowlisted
func Invite() Detector {
	return detectorFunc{
		lockType: domain.LockTypeInvite,
		detect: func(msg *message.Message, dc *domain.DetectionContext) bool {
			for _, link := range msg.Links() {
				if IsInviteLink(link) && !linkAllowed(link, dc) {
					return true
				}
			}
			return false
		},
	}
}

// IsInviteLink reports whether link is a t.me style invite link
func IsInviteLink(link string) bool {
	u := parseLink(link)
	if u == nil {
		return false
	}
	if _, ok := inviteHosts[domain.NormalizeDomain(u.Hostname())]; !ok {
		return false
	}
	return strings.HasPrefix(u.Path, "/+") || strings.HasPrefix(u.Path, "/joinchat/")
}

// linkAllowed checks the exact link, then its host, then its registrable
// domain against the chat's allowlists
func linkAllowed(link string, dc *domain.DetectionContext) bool {
	if dc == nil {
		return false
	}

	normalized := strings.ToLower(strings.TrimSpace(link))
	if _, ok := dc.AllowlistedURLs[normalized]; ok {
		return true
	}
	if _, ok := dc.AllowlistedURLs[strings.TrimSuffix(normalized, "/")]; ok {
		return true
	}

	u := parseLink(link)
	if u == nil {
		return false
	}
	host := domain.NormalizeDomain(u.Hostname())
	if host == "" {
		return false
	}
	if _, ok := dc.AllowlistedDomains[host]; ok {
		return true
	}
	return registrableDomainAllowed(host, dc)
}

func registrableDomainAllowed(host string, dc *domain.DetectionContext) bool {
	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		// Bare suffixes and IP addresses have no registrable domain
		return false
	}
	_, ok := dc.AllowlistedDomains[registrable]
	return ok
}

// parseLink parses links with or without a scheme
func parseLink(link string) *url.URL {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil
	}
	if !strings.Contains(link, "://") {
		link = "http://" + link
	}
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return nil
	}
	return u
}
