package gconf

import (
	"encoding/json"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/quorumtest/assert"
	"github.com/iov-one/quorum/store"
)

type testConfig struct {
	Text  string         `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	Limit uint32         `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	Admin quorum.Address `protobuf:"bytes,3,opt,name=admin,proto3" json:"admin,omitempty"`
}

func (m *testConfig) Reset()         { *m = testConfig{} }
func (m *testConfig) String() string { return proto.CompactTextString(m) }
func (*testConfig) ProtoMessage()    {}

func (c *testConfig) Validate() error {
	if c.Limit == 0 {
		return errors.Field("Limit", errors.ErrInput, "required")
	}
	if err := c.Admin.Validate(); err != nil {
		return errors.Field("Admin", err, "invalid address")
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	cases := map[string]struct {
		Conf        *testConfig
		WantSaveErr *errors.Error
		WantLoadErr *errors.Error
	}{
		"all fields": {
			Conf: &testConfig{Text: "foobar", Limit: 7, Admin: quorumtest.NewAddress()},
		},
		"empty text": {
			Conf: &testConfig{Limit: 1, Admin: quorumtest.NewAddress()},
		},
		"invalid address cannot be saved": {
			Conf:        &testConfig{Limit: 1, Admin: quorum.Address("too short")},
			WantSaveErr: errors.ErrInput,
			WantLoadErr: errors.ErrNotFound,
		},
		"zero limit cannot be saved": {
			Conf:        &testConfig{Admin: quorumtest.NewAddress()},
			WantSaveErr: errors.ErrInput,
			WantLoadErr: errors.ErrNotFound,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			if err := Save(db, "test", tc.Conf); !tc.WantSaveErr.Is(err) {
				t.Fatalf("unexpected save error: %s", err)
			}

			var got testConfig
			if err := Load(db, "test", &got); !tc.WantLoadErr.Is(err) {
				t.Fatalf("unexpected load error: %s", err)
			}
			if tc.WantLoadErr != nil {
				return
			}
			assert.Equal(t, tc.Conf, &got)
		})
	}
}

func TestLoadIsScopedByPackage(t *testing.T) {
	db := store.MemStore()
	conf := &testConfig{Limit: 3, Admin: quorumtest.NewAddress()}
	assert.Nil(t, Save(db, "first", conf))

	var got testConfig
	assert.IsErr(t, errors.ErrNotFound, Load(db, "second", &got))
	assert.Nil(t, Load(db, "first", &got))
	assert.Equal(t, conf, &got)
}

func TestInitConfig(t *testing.T) {
	admin := quorumtest.NewAddress()

	cases := map[string]struct {
		Genesis string
		WantErr *errors.Error
		Want    *testConfig
	}{
		"valid configuration": {
			Genesis: `{"conf": {"test": {"text": "hello", "limit": 4, "admin": "` + admin.String() + `"}}}`,
			Want:    &testConfig{Text: "hello", Limit: 4, Admin: admin},
		},
		"missing package configuration": {
			Genesis: `{"conf": {"other": {"limit": 4}}}`,
			WantErr: errors.ErrNotFound,
		},
		"missing conf section": {
			Genesis: `{}`,
			WantErr: errors.ErrNotFound,
		},
		"invalid configuration": {
			Genesis: `{"conf": {"test": {"text": "hello", "admin": "` + admin.String() + `"}}}`,
			WantErr: errors.ErrInput,
		},
		"malformed json": {
			Genesis: `{"conf": {"test": {"limit": "four"}}}`,
			WantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts quorum.Options
			if err := json.Unmarshal([]byte(tc.Genesis), &opts); err != nil {
				t.Fatalf("cannot unmarshal genesis: %s", err)
			}

			db := store.MemStore()
			err := InitConfig(db, opts, "test", &testConfig{})
			assert.IsErr(t, tc.WantErr, err)
			if tc.WantErr != nil {
				return
			}

			var got testConfig
			assert.Nil(t, Load(db, "test", &got))
			assert.Equal(t, tc.Want, &got)
		})
	}
}
