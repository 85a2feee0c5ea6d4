package service

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"onboarding-backend/internal/config"
	apperrors "onboarding-backend/internal/errors"

	"github.com/go-ldap/ldap/v3"
)

const directorySizeLimit = 25

// DirectoryPerson is a directory entry offered in the buddy and manager pickers
type DirectoryPerson struct {
	DN         string `json:"dn"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Title      string `json:"title"`
	Department string `json:"department"`
}

// ldapClient is the part of *ldap.Conn the directory search uses
type ldapClient interface {
	Bind(username, password string) error
	Search(searchRequest *ldap.SearchRequest) (*ldap.SearchResult, error)
	SetTimeout(d time.Duration)
	Close() error
}

var dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
	return ldap.DialTLS(network, addr, cfg)
}

// DirectoryService searches the company LDAP directory
type DirectoryService struct {
	cfg *config.Config
}

var _ DirectoryServiceInterface = (*DirectoryService)(nil)

// NewDirectoryService creates a new directory service
func NewDirectoryService(cfg *config.Config) *DirectoryService {
	return &DirectoryService{cfg: cfg}
}

// SearchPeople matches query against cn, mail and displayName
func (s *DirectoryService) SearchPeople(ctx context.Context, query string) ([]DirectoryPerson, error) {
	if !s.cfg.DirectoryEnabled() {
		return nil, apperrors.ErrDirectoryDisabled
	}
	query = strings.TrimSpace(query)
	if len([]rune(query)) < 2 {
		return nil, apperrors.NewValidationError("q", "must be at least 2 characters")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	addr := s.cfg.LDAPHost + ":" + s.cfg.LDAPPort
	l, err := dialLDAP("tcp", addr, &tls.Config{InsecureSkipVerify: s.cfg.LDAPInsecureSkipVerify})
	if err != nil {
		return nil, fmt.Errorf("ldap dial %s: %w", addr, err)
	}
	defer l.Close()

	if s.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(s.cfg.LDAPTimeoutSec) * time.Second)
	}

	if err := l.Bind(s.cfg.LDAPBindDN, s.cfg.LDAPBindPW); err != nil {
		return nil, fmt.Errorf("ldap bind: %w", err)
	}

	q := ldap.EscapeFilter(query)
	filter := fmt.Sprintf("(&(objectClass=person)(|(cn=%s*)(mail=%s*)(displayName=*%s*)))", q, q, q)
	attrs := []string{"cn", "displayName", "mail", "title", "department"}

	req := ldap.NewSearchRequest(
		s.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		directorySizeLimit,
		s.cfg.LDAPTimeoutSec,
		false,
		filter,
		attrs,
		nil,
	)

	res, err := l.Search(req)
	if err != nil && !ldap.IsErrorWithCode(err, ldap.LDAPResultSizeLimitExceeded) {
		return nil, fmt.Errorf("ldap search: %w", err)
	}
	if res == nil {
		return []DirectoryPerson{}, nil
	}

	out := make([]DirectoryPerson, 0, len(res.Entries))
	for _, e := range res.Entries {
		name := e.GetAttributeValue("displayName")
		if name == "" {
			name = e.GetAttributeValue("cn")
		}
		out = append(out, DirectoryPerson{
			DN:         e.DN,
			Name:       name,
			Email:      e.GetAttributeValue("mail"),
			Title:      e.GetAttributeValue("title"),
			Department: e.GetAttributeValue("department"),
		})
	}
	return out, nil
}
