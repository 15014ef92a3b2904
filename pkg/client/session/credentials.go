package session

// CredentialStore holds the bearer token behind an interface so the
// backing medium (file, cookie jar, OS keychain) can be swapped without
// touching call sites.
type CredentialStore interface {
	Token() string
	SetToken(token string) error
	Clear() error
}

const tokenKey = "token"

// StorageCredentials keeps the token in a Storage under a fixed key.
type StorageCredentials struct {
	storage Storage
}

func NewStorageCredentials(storage Storage) *StorageCredentials {
	return &StorageCredentials{storage: storage}
}

func (c *StorageCredentials) Token() string {
	t, _ := c.storage.Get(tokenKey)
	return t
}

func (c *StorageCredentials) SetToken(token string) error {
	return c.storage.Set(tokenKey, token)
}

func (c *StorageCredentials) Clear() error {
	return c.storage.Delete(tokenKey)
}
