package multisig

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/gconf"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ quorum.Initializer = Initializer{}

// FromGenesis reads the wallet configuration from the "multisig" entry of
// the "conf" section and saves it in the database. Use Load to open the
// wallet afterwards.
func (Initializer) FromGenesis(opts quorum.Options, db quorum.KVStore) error {
	return gconf.InitConfig(db, opts, configPkg, &Config{})
}
