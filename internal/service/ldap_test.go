package service

import (
	"context"
	"crypto/tls"
	"errors"
	"testing"
	"time"

	"onboarding-backend/internal/config"
	apperrors "onboarding-backend/internal/errors"

	"github.com/go-ldap/ldap/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLDAPClient implements ldapClient for testing
type fakeLDAPClient struct {
	bindErr           error
	searchErr         error
	searchRes         *ldap.SearchResult
	receivedSearchReq *ldap.SearchRequest

	setTimeoutCalled bool
	timeoutValue     time.Duration

	closed bool
}

func (f *fakeLDAPClient) Bind(username, password string) error {
	return f.bindErr
}

func (f *fakeLDAPClient) Search(searchRequest *ldap.SearchRequest) (*ldap.SearchResult, error) {
	f.receivedSearchReq = searchRequest
	if f.searchErr != nil {
		return f.searchRes, f.searchErr
	}
	if f.searchRes != nil {
		return f.searchRes, nil
	}
	return &ldap.SearchResult{Entries: []*ldap.Entry{}}, nil
}

func (f *fakeLDAPClient) Close() error {
	f.closed = true
	return nil
}

func (f *fakeLDAPClient) SetTimeout(d time.Duration) {
	f.setTimeoutCalled = true
	f.timeoutValue = d
}

func makeLDAPConfig() *config.Config {
	return &config.Config{
		LDAPHost:               "ldap.example.com",
		LDAPPort:               "636",
		LDAPBindDN:             "CN=Service,OU=Users,DC=example,DC=com",
		LDAPBindPW:             "SuperSecret123",
		LDAPBaseDN:             "DC=example,DC=com",
		LDAPInsecureSkipVerify: true,
		LDAPTimeoutSec:         5,
	}
}

func withFakeLDAP(t *testing.T, client *fakeLDAPClient, dialErr error) {
	t.Helper()
	orig := dialLDAP
	t.Cleanup(func() { dialLDAP = orig })
	dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
		if dialErr != nil {
			return nil, dialErr
		}
		return client, nil
	}
}

func TestDirectory_Disabled(t *testing.T) {
	svc := NewDirectoryService(&config.Config{})
	_, err := svc.SearchPeople(context.Background(), "ada")
	assert.ErrorIs(t, err, apperrors.ErrDirectoryDisabled)
	assert.True(t, apperrors.IsConfiguration(err))
}

func TestDirectory_QueryTooShort(t *testing.T) {
	svc := NewDirectoryService(makeLDAPConfig())
	_, err := svc.SearchPeople(context.Background(), " a ")
	assert.True(t, apperrors.IsValidation(err))
}

func TestDirectory_DialError(t *testing.T) {
	withFakeLDAP(t, nil, errors.New("dial failed"))

	res, err := NewDirectoryService(makeLDAPConfig()).SearchPeople(context.Background(), "ada")
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "dial failed")
}

func TestDirectory_BindError(t *testing.T) {
	client := &fakeLDAPClient{bindErr: errors.New("invalid credentials")}
	withFakeLDAP(t, client, nil)

	_, err := NewDirectoryService(makeLDAPConfig()).SearchPeople(context.Background(), "ada")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	assert.True(t, client.closed)
}

func TestDirectory_SearchBuildsEscapedFilter(t *testing.T) {
	client := &fakeLDAPClient{}
	withFakeLDAP(t, client, nil)

	_, err := NewDirectoryService(makeLDAPConfig()).SearchPeople(context.Background(), "ad*a(")
	require.NoError(t, err)

	require.NotNil(t, client.receivedSearchReq)
	assert.Equal(t, "DC=example,DC=com", client.receivedSearchReq.BaseDN)
	assert.Contains(t, client.receivedSearchReq.Filter, `(cn=ad\2aa\28*)`)
	assert.Contains(t, client.receivedSearchReq.Filter, `(mail=ad\2aa\28*)`)
	assert.Contains(t, client.receivedSearchReq.Filter, `(displayName=*ad\2aa\28*)`)
	assert.True(t, client.setTimeoutCalled)
	assert.Equal(t, 5*time.Second, client.timeoutValue)
	assert.True(t, client.closed)
}

func TestDirectory_MapsEntries(t *testing.T) {
	client := &fakeLDAPClient{searchRes: &ldap.SearchResult{Entries: []*ldap.Entry{
		ldap.NewEntry("CN=Ada,DC=example,DC=com", map[string][]string{
			"cn":          {"Ada"},
			"displayName": {"Ada Lovelace"},
			"mail":        {"ada@example.com"},
			"title":       {"Engineer"},
			"department":  {"R&D"},
		}),
		ldap.NewEntry("CN=Alan,DC=example,DC=com", map[string][]string{
			"cn":   {"Alan Turing"},
			"mail": {"alan@example.com"},
		}),
	}}}
	withFakeLDAP(t, client, nil)

	people, err := NewDirectoryService(makeLDAPConfig()).SearchPeople(context.Background(), "a")
	// single characters are rejected before dialing
	assert.True(t, apperrors.IsValidation(err))
	assert.Nil(t, people)

	people, err = NewDirectoryService(makeLDAPConfig()).SearchPeople(context.Background(), "al")
	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, DirectoryPerson{
		DN: "CN=Ada,DC=example,DC=com", Name: "Ada Lovelace", Email: "ada@example.com", Title: "Engineer", Department: "R&D",
	}, people[0])
	assert.Equal(t, "Alan Turing", people[1].Name)
}

func TestDirectory_SizeLimitReturnsPartialResults(t *testing.T) {
	client := &fakeLDAPClient{
		searchRes: &ldap.SearchResult{Entries: []*ldap.Entry{
			ldap.NewEntry("CN=Ada,DC=example,DC=com", map[string][]string{"cn": {"Ada"}}),
		}},
		searchErr: ldap.NewError(ldap.LDAPResultSizeLimitExceeded, errors.New("size limit")),
	}
	withFakeLDAP(t, client, nil)

	people, err := NewDirectoryService(makeLDAPConfig()).SearchPeople(context.Background(), "ada")
	require.NoError(t, err)
	assert.Len(t, people, 1)
}

func TestDirectory_SearchError(t *testing.T) {
	client := &fakeLDAPClient{searchErr: errors.New("boom")}
	withFakeLDAP(t, client, nil)

	_, err := NewDirectoryService(makeLDAPConfig()).SearchPeople(context.Background(), "ada")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
