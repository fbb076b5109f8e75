package badger

import (
	"encoding/hex"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

const (
	personPrefix          = "person:"
	personLinkedInPrefix  = "perli:"
	personGitHubPrefix    = "pergh:"
	companyPrefix         = "company:"
	companyLinkedInPrefix = "comli:"
	vectorPrefix          = "vec:"
)

// digest hashes a unique external identifier into a fixed-size index key
// component, so arbitrary URLs never collide with the key separator.
func digest(value string) string {
	h, _ := blake2b.New(16, nil)
	h.Write([]byte(value))
	return hex.EncodeToString(h.Sum(nil))
}

// makePersonKey generates a key for a person by ID.
func makePersonKey(id string) []byte {
	return []byte(personPrefix + id)
}

// makePersonLinkedInKey generates the unique index key for a LinkedIn URL.
func makePersonLinkedInKey(url string) []byte {
	return []byte(personLinkedInPrefix + digest(url))
}

// makePersonGitHubKey generates the unique index key for a GitHub login.
// Logins are case-insensitive on GitHub.
func makePersonGitHubKey(login string) []byte {
	return []byte(personGitHubPrefix + digest(strings.ToLower(login)))
}

// makeCompanyKey generates a key for a company by ID.
func makeCompanyKey(id string) []byte {
	return []byte(companyPrefix + id)
}

// makeCompanyLinkedInKey generates the unique index key for a company page.
func makeCompanyLinkedInKey(url string) []byte {
	return []byte(companyLinkedInPrefix + digest(url))
}

// makeVectorPrefix is the scan prefix of one namespace.
// Format: vec:namespace:
func makeVectorPrefix(namespace string) []byte {
	return []byte(vectorPrefix + namespace + ":")
}

// makeVectorKey generates a key for a vector inside a namespace.
// Format: vec:namespace:id
func makeVectorKey(namespace, id string) []byte {
	return append(makeVectorPrefix(namespace), id...)
}
