package multisig

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/gconf"
)

// configPkg is the gconf package name the wallet configuration is stored as.
const configPkg = "multisig"

// Registry is the owner set and threshold of a wallet. It cannot be modified
// once created.
type Registry struct {
	owners    []quorum.Address
	index     map[string]struct{}
	threshold uint32
}

// NewRegistry validates the owners and threshold and returns a registry
// holding them. The order of owners is preserved.
//
// A threshold greater than the number of owners is rejected, because no
// transaction could ever be executed.
func NewRegistry(owners []quorum.Address, threshold uint32) (*Registry, error) {
	if len(owners) == 0 {
		return nil, errors.Field("Owners", ErrOwnersNotProvided, "empty owner list")
	}
	if threshold == 0 {
		return nil, errors.Field("Threshold", ErrInvalidThreshold, "must be greater than zero")
	}

	r := &Registry{
		owners:    make([]quorum.Address, 0, len(owners)),
		index:     make(map[string]struct{}, len(owners)),
		threshold: threshold,
	}
	for i, owner := range owners {
		if err := owner.Validate(); err != nil || owner.IsNull() {
			return nil, errors.Field(errors.FieldPath("Owners", i), ErrInvalidOwnerAddress, "%v", owner)
		}
		key := string(owner)
		if _, ok := r.index[key]; ok {
			return nil, errors.Field(errors.FieldPath("Owners", i), ErrDuplicateOwner, "%s", owner)
		}
		r.index[key] = struct{}{}
		r.owners = append(r.owners, append(quorum.Address(nil), owner...))
	}

	if int64(threshold) > int64(len(r.owners)) {
		return nil, errors.Field("Threshold", ErrInvalidThreshold,
			"%d is greater than the number of owners %d", threshold, len(r.owners))
	}
	return r, nil
}

// LoadRegistry returns the registry of the wallet configured in given store.
func LoadRegistry(db gconf.ReadStore) (*Registry, error) {
	conf, err := loadConfig(db)
	if err != nil {
		return nil, err
	}
	return NewRegistry(conf.Owners, conf.Threshold)
}

func loadConfig(db gconf.ReadStore) (*Config, error) {
	var conf Config
	if err := gconf.Load(db, configPkg, &conf); err != nil {
		return nil, errors.Wrap(err, "wallet configuration")
	}
	return &conf, nil
}

// IsOwner returns true if given address is one of the owners.
func (r *Registry) IsOwner(addr quorum.Address) bool {
	_, ok := r.index[string(addr)]
	return ok
}

// OwnerCount returns the number of owners.
func (r *Registry) OwnerCount() int {
	return len(r.owners)
}

// Threshold returns the number of approvals a transaction needs.
func (r *Registry) Threshold() uint32 {
	return r.threshold
}

// Owners returns a copy of the owner list, in the order it was created with.
func (r *Registry) Owners() []quorum.Address {
	owners := make([]quorum.Address, len(r.owners))
	for i, o := range r.owners {
		owners[i] = append(quorum.Address(nil), o...)
	}
	return owners
}
