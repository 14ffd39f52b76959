package registry

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/calehh/gov-core/types"
	"github.com/cosmos/iavl"
	dbm "github.com/cosmos/iavl/db"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/syndtr/goleveldb/leveldb"

	cmtlog "github.com/cometbft/cometbft/libs/log"
)

var (
	KeyHeader       = "s"
	KeyProposalBody = "p%v"
)

// storeHeader is the snapshot root record: the id set, the execution
// queue and the counters.
type storeHeader struct {
	Ids              []uint64 `json:"ids"`
	Queue            []uint64 `json:"queue"`
	TotalProcessed   uint64   `json:"totalProcessed"`
	FailedExecutions uint64   `json:"failedExecutions"`
}

// Store persists registry snapshots into an iavl tree over leveldb.
// It is a restart convenience for the standalone service; the
// in-memory Registry stays authoritative between Save calls.
type Store struct {
	dir    string
	logger cmtlog.Logger
	ldb    dbm.DB
	db     *iavl.MutableTree
}

func NewStore(dir string, logger cmtlog.Logger) (s *Store, err error) {
	logger = logger.With("module", "govdb")
	ldb, err := dbm.NewDB("gov", "goleveldb", dir)
	if err != nil {
		return nil, err
	}
	tdb := iavl.NewMutableTree(ldb, 128, true, wrapIavlLogger(logger))
	version, err := tdb.Load()
	if err != nil {
		return nil, err
	}
	logger.Info("load db success", "version", version)
	s = &Store{
		dir:    dir,
		logger: logger,
		ldb:    ldb,
		db:     tdb,
	}
	return
}

// Close releases the tree and then the leveldb handle; the tree's own
// Close leaves the backing db open for other trees, which would keep
// the directory lock held across a reopen.
func (s *Store) Close() (err error) {
	err = s.db.Close()
	if err1 := s.ldb.Close(); err == nil {
		err = err1
	}
	return
}

// Save writes the registry's current state as a new tree version and
// returns the keccak of the resulting root hash.
func (s *Store) Save(r *Registry) (h common.Hash, err error) {
	r.mtx.Lock()
	header := storeHeader{
		Ids:              make([]uint64, 0, len(r.proposals)),
		Queue:            append([]uint64{}, r.queue...),
		TotalProcessed:   r.totalProcessed,
		FailedExecutions: r.failedExecutions,
	}
	for id := range r.proposals {
		header.Ids = append(header.Ids, id)
	}
	sort.Slice(header.Ids, func(i, j int) bool { return header.Ids[i] < header.Ids[j] })
	bodies := make([]*ProposalInfo, 0, len(header.Ids))
	for _, id := range header.Ids {
		bodies = append(bodies, r.proposals[id].Clone())
	}
	r.mtx.Unlock()

	defer func() {
		if err != nil {
			s.db.Rollback()
		}
	}()
	val, err := json.Marshal(header)
	if err != nil {
		return
	}
	_, err = s.db.Set([]byte(KeyHeader), val)
	if err != nil {
		return
	}
	for _, p := range bodies {
		key := fmt.Sprintf(KeyProposalBody, p.Id)
		val, err = json.Marshal(p)
		if err != nil {
			return
		}
		_, err = s.db.Set([]byte(key), val)
		if err != nil {
			return
		}
	}
	hash, _, err := s.db.SaveVersion()
	if err != nil {
		return
	}
	h = crypto.Keccak256Hash(hash)
	return
}

// Load replaces the registry's state with the last saved snapshot. An
// empty store leaves the registry untouched.
func (s *Store) Load(r *Registry) (err error) {
	val, err := s.db.Get([]byte(KeyHeader))
	if err != nil {
		if err != leveldb.ErrNotFound {
			return err
		}
	}
	if val == nil {
		return nil
	}
	var header storeHeader
	err = json.Unmarshal(val, &header)
	if err != nil {
		return
	}
	proposals := make(map[uint64]*ProposalInfo, len(header.Ids))
	for _, id := range header.Ids {
		key := fmt.Sprintf(KeyProposalBody, id)
		val, err = s.db.Get([]byte(key))
		if err != nil {
			return
		}
		if val == nil {
			return fmt.Errorf("snapshot missing proposal %v", id)
		}
		p := new(ProposalInfo)
		err = json.Unmarshal(val, p)
		if err != nil {
			return
		}
		proposals[id] = p
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.proposals = proposals
	r.byType = make(map[types.ProposalType][]uint64, len(proposals))
	for _, id := range header.Ids {
		p := proposals[id]
		r.byType[p.Type] = append(r.byType[p.Type], id)
	}
	r.queue = append([]uint64{}, header.Queue...)
	r.totalProcessed = header.TotalProcessed
	r.failedExecutions = header.FailedExecutions
	s.logger.Info("registry snapshot loaded", "proposals", len(proposals), "queue", len(r.queue))
	return nil
}
