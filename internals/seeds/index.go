package seeds

import (
	"fmt"

	"github.com/google/uuid"
)

// index menyimpan id hasil seed per natural key untuk step berikutnya.
type index struct {
	years     map[string]uuid.UUID // name
	schools   map[string]uuid.UUID // npsn
	schoolYrs map[string]uuid.UUID // npsn|year
	users     map[string]uuid.UUID // email
	teachers  map[string]uuid.UUID // nip
	guardians map[string]uuid.UUID // phone
	students  map[string]uuid.UUID // nisn
}

func newIndex() *index {
	return &index{
		years:     map[string]uuid.UUID{},
		schools:   map[string]uuid.UUID{},
		schoolYrs: map[string]uuid.UUID{},
		users:     map[string]uuid.UUID{},
		teachers:  map[string]uuid.UUID{},
		guardians: map[string]uuid.UUID{},
		students:  map[string]uuid.UUID{},
	}
}

func lookup(m map[string]uuid.UUID, kind, key string) (uuid.UUID, error) {
	id, ok := m[key]
	if !ok {
		return uuid.Nil, fmt.Errorf("%s %q tidak ada di data seed", kind, key)
	}
	return id, nil
}
