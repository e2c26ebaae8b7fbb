package catalog

import (
	"bytes"
	"runtime"

	"github.com/dgraph-io/badger/v3"
	"github.com/fine-structures/cubemesh/gomesh"
	"github.com/fine-structures/cubemesh/libmesh"
	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

/***

Catalog database format:

	gCatalogStateKey => CatalogState

	gMeshKeyPrefix, name (utf8)  => MeshDef
	...

Names sort by their utf8 bytes, so Names() enumerates in ascending order via a prefix scan.

***/

var (
	gCatalogStateKey = []byte{0x00, 0x00, 0x01}
	gMeshKeyPrefix   = []byte{0x01}
)

const (
	kMajorVers = 2024
	kMinorVers = 1
)

// catalog is a badger db wrapper for a named mesh catalog
type catalog struct {
	readOnly   bool
	stateDirty bool
	state      gomesh.CatalogState
	db         *badger.DB
}

// OpenCatalog opens (or creates) a mesh catalog.  If opts.DbPathName is empty, the catalog is in-memory only.
func OpenCatalog(opts gomesh.CatalogOpts) (gomesh.Catalog, error) {
	cat := &catalog{
		readOnly: opts.ReadOnly,
	}

	dbOpts := badger.DefaultOptions(opts.DbPathName)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false // not needed so disable for performance
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	// Badger for windows currently does not support read-only mode
	if runtime.GOOS == "windows" {
		dbOpts.ReadOnly = false
	}

	if len(opts.DbPathName) == 0 {
		if opts.ReadOnly {
			return nil, errors.Wrap(gomesh.ErrBadCatalogParam, "DbPathName must be specified for read-only catalog")
		}
		dbOpts.InMemory = true
	}

	var err error
	cat.db, err = badger.Open(dbOpts)
	if err != nil {
		return nil, err
	}

	err = cat.loadState()
	if err == badger.ErrKeyNotFound {
		err = nil
		cat.stateDirty = !cat.readOnly
		cat.state.MajorVers = kMajorVers
		cat.state.MinorVers = kMinorVers
	}

	if err == nil && (cat.state.MajorVers != kMajorVers || cat.state.MinorVers != kMinorVers) {
		err = errors.Wrapf(gomesh.ErrBadCatalogParam, "catalog version %d.%d is incompatible", cat.state.MajorVers, cat.state.MinorVers)
	}

	if err != nil {
		cat.Close()
		return nil, err
	}

	klog.V(2).Infof("opened mesh catalog %q (%d meshes)", opts.DbPathName, cat.state.NumMeshes)
	return cat, nil
}

func (cat *catalog) loadState() error {
	err := cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gCatalogStateKey)
		if err == nil {
			err = item.Value(func(val []byte) error {
				return proto.Unmarshal(val, &cat.state)
			})
		}
		return err
	})
	return err
}

func (cat *catalog) flushState() {
	if cat.stateDirty {
		err := cat.db.Update(func(txn *badger.Txn) error {
			stateBuf, err := proto.Marshal(&cat.state)
			if err != nil {
				return err
			}
			return txn.Set(gCatalogStateKey, stateBuf)
		})
		if err != nil {
			panic(err)
		}
		cat.stateDirty = false
	}
}

func (cat *catalog) Close() error {
	if cat.db != nil {
		cat.flushState()
		cat.db.Close()
		cat.db = nil
	}
	return nil
}

func (cat *catalog) IsReadOnly() bool {
	return cat.readOnly
}

func (cat *catalog) checkOpen() error {
	if cat.db == nil {
		return errors.Wrap(gomesh.ErrBadCatalogParam, "catalog is closed")
	}
	return nil
}

func (cat *catalog) NumMeshes() int {
	return int(cat.state.NumMeshes)
}

func formMeshKey(name string) ([]byte, error) {
	if len(name) == 0 {
		return nil, errors.Wrap(gomesh.ErrBadCatalogParam, "mesh name must not be empty")
	}
	key := make([]byte, 0, len(gMeshKeyPrefix)+len(name))
	key = append(key, gMeshKeyPrefix...)
	key = append(key, name...)
	return key, nil
}

func (cat *catalog) Put(name string, def *gomesh.MeshDef) error {
	if err := cat.checkOpen(); err != nil {
		return err
	}
	if cat.readOnly {
		return gomesh.ErrReadOnly
	}
	key, err := formMeshKey(name)
	if err != nil {
		return err
	}
	val, err := def.Encode()
	if err != nil {
		return err
	}

	added := false
	err = cat.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		switch err {
		case badger.ErrKeyNotFound:
			added = true
		case nil:
		default:
			return err
		}
		return txn.Set(key, val)
	})
	if err == nil && added {
		cat.state.NumMeshes++
		cat.stateDirty = true
	}
	return err
}

func (cat *catalog) Get(name string) (*gomesh.MeshDef, error) {
	if err := cat.checkOpen(); err != nil {
		return nil, err
	}
	key, err := formMeshKey(name)
	if err != nil {
		return nil, err
	}

	def := &gomesh.MeshDef{}
	err = cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(def.Decode)
	})
	if err == badger.ErrKeyNotFound {
		return nil, errors.Wrapf(gomesh.ErrNotFound, "mesh %q", name)
	}
	if err != nil {
		return nil, err
	}
	return def, nil
}

func (cat *catalog) Delete(name string) error {
	if err := cat.checkOpen(); err != nil {
		return err
	}
	if cat.readOnly {
		return gomesh.ErrReadOnly
	}
	key, err := formMeshKey(name)
	if err != nil {
		return err
	}

	removed := false
	err = cat.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		removed = true
		return txn.Delete(key)
	})
	if err == nil && removed {
		cat.state.NumMeshes--
		cat.stateDirty = true
	}
	return err
}

func (cat *catalog) Names() ([]string, error) {
	if err := cat.checkOpen(); err != nil {
		return nil, err
	}
	var names []string

	err := cat.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: false,
			Prefix:         gMeshKeyPrefix,
		})
		defer it.Close()

		for it.Seek(gMeshKeyPrefix); it.ValidForPrefix(gMeshKeyPrefix); it.Next() {
			key := it.Item().Key()
			names = append(names, string(bytes.TrimPrefix(key, gMeshKeyPrefix)))
		}
		return nil
	})
	return names, err
}

// PutGraph stores X's encoding under the given name.
func PutGraph(cat gomesh.Catalog, name string, X *libmesh.Graph) error {
	def := X.ExportDef()
	def.Label = name
	return cat.Put(name, def)
}

// GetGraph decodes the named mesh into a new graph.
func GetGraph(cat gomesh.Catalog, name string) (*libmesh.Graph, error) {
	def, err := cat.Get(name)
	if err != nil {
		return nil, err
	}
	return libmesh.NewGraphFromDef(def)
}
