package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// NamespacedKey identifies any item kind. The string form is "namespace:key".
type NamespacedKey struct {
	Namespace string
	Key       string
}

// ObjectKey returns the key of a base game object, e.g. ObjectKey("138")
func ObjectKey(id string) NamespacedKey {
	return NamespacedKey{Namespace: NamespaceGame, Key: ObjectPrefix + id}
}

// ObjectKeyInt returns the key of a base game object by numeric id
func ObjectKeyInt(id int) NamespacedKey {
	return ObjectKey(strconv.Itoa(id))
}

// ParseKey parses "namespace:key". A bare id with no namespace is treated as a base game object.
func ParseKey(s string) (NamespacedKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NamespacedKey{}, fmt.Errorf("%w: empty", ErrInvalidKey)
	}

	ns, key, found := strings.Cut(s, ":")
	if !found {
		return ObjectKey(s).Normalize(), nil
	}
	if ns == "" || key == "" {
		return NamespacedKey{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}

	return NamespacedKey{Namespace: ns, Key: key}.Normalize(), nil
}

// MustParseKey is ParseKey for static tables; it panics on malformed input.
func MustParseKey(s string) NamespacedKey {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Normalize strips a leading item-category marker such as "(O)" from the last
// path segment, so "Object/(O)138" and "Object/138" compare equal.
func (k NamespacedKey) Normalize() NamespacedKey {
	idx := strings.LastIndexByte(k.Key, '/')
	head, tail := k.Key[:idx+1], k.Key[idx+1:]
	k.Key = head + stripCategory(tail)
	return k
}

// Equal compares two keys by normalized value
func (k NamespacedKey) Equal(other NamespacedKey) bool {
	return k.Normalize() == other.Normalize()
}

// IsZero reports whether the key is unset
func (k NamespacedKey) IsZero() bool {
	return k.Namespace == "" && k.Key == ""
}

// ObjectID returns the base game object id if this key names one
func (k NamespacedKey) ObjectID() (string, bool) {
	n := k.Normalize()
	if n.Namespace != NamespaceGame || !strings.HasPrefix(n.Key, ObjectPrefix) {
		return "", false
	}
	return strings.TrimPrefix(n.Key, ObjectPrefix), true
}

// QualifiedID returns the "(O)138" form used by the game's item registry
func (k NamespacedKey) QualifiedID() string {
	if id, ok := k.ObjectID(); ok {
		return "(O)" + id
	}
	return k.String()
}

func (k NamespacedKey) String() string {
	return k.Namespace + ":" + k.Key
}

// MarshalText implements encoding.TextMarshaler so keys can be used as JSON map keys
func (k NamespacedKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *NamespacedKey) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// stripCategory removes a "(X)" prefix, e.g. "(O)138" -> "138"
func stripCategory(id string) string {
	if len(id) < 3 || id[0] != '(' {
		return id
	}
	end := strings.IndexByte(id, ')')
	if end < 0 || end == len(id)-1 {
		return id
	}
	return id[end+1:]
}
