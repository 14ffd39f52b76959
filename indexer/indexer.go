package indexer

import (
	"github.com/calehh/gov-core/notify"
	gov_types "github.com/calehh/gov-core/types"
	abci "github.com/cometbft/cometbft/abci/types"
	cmtlog "github.com/cometbft/cometbft/libs/log"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

var _ notify.Sink = &Indexer{}

type eventHandler func(event abci.Event)

// Indexer records every emitted registry event into sqlite so external
// tooling can page through the history. It sits behind the notify.Sink
// contract: ingestion failures are logged, never surfaced to the
// emitting operation.
type Indexer struct {
	logger        cmtlog.Logger
	db            *gorm.DB
	eventHandlers map[string]eventHandler
}

func NewIndexer(logger cmtlog.Logger, dbPath string) (*Indexer, error) {
	logger = logger.With("module", "indexer")
	logger.Info("NewIndexer", "dbPath", dbPath)
	db, err := gorm.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Registration{}, &Approval{}, &Execution{}, &BatchRun{}).Error; err != nil {
		return nil, err
	}
	ix := &Indexer{
		logger:        logger,
		db:            db,
		eventHandlers: map[string]eventHandler{},
	}
	ix.eventHandlers = map[string]eventHandler{
		gov_types.EventRegisteredType:     ix.handleEventRegistered,
		gov_types.EventApprovedType:       ix.handleEventApproved,
		gov_types.EventExecutionType:      ix.handleEventExecution,
		gov_types.EventQueueProcessedType: ix.handleEventQueueProcessed,
	}
	return ix, nil
}

func (ix *Indexer) Close() error {
	return ix.db.Close()
}

// Emit implements notify.Sink.
func (ix *Indexer) Emit(event abci.Event) {
	if h, ok := ix.eventHandlers[event.Type]; ok {
		h(event)
	}
}

func (ix *Indexer) handleEventRegistered(event abci.Event) {
	ev := gov_types.DecodeEventRegistered(event)
	if ev == nil {
		ix.logger.Error("decode event fail", "event", event)
		return
	}
	reg := Registration{
		Id:        ev.Proposal,
		Type:      ev.Type,
		Creator:   ev.Creator,
		Timestamp: ev.Timestamp,
	}
	if err := ix.db.Save(&reg).Error; err != nil {
		ix.logger.Error("save registration fail", "err", err)
	}
}

func (ix *Indexer) handleEventApproved(event abci.Event) {
	ev := gov_types.DecodeEventApproved(event)
	if ev == nil {
		ix.logger.Error("decode event fail", "event", event)
		return
	}
	approval := Approval{
		Proposal:  ev.Proposal,
		Type:      ev.Type,
		Timestamp: ev.Timestamp,
	}
	if err := ix.db.Save(&approval).Error; err != nil {
		ix.logger.Error("save approval fail", "err", err)
	}
}

func (ix *Indexer) handleEventExecution(event abci.Event) {
	ev := gov_types.DecodeEventExecution(event)
	if ev == nil {
		ix.logger.Error("decode event fail", "event", event)
		return
	}
	exec := Execution{
		Proposal:  ev.Proposal,
		Type:      ev.Type,
		Executor:  ev.Executor,
		Success:   ev.Success,
		Timestamp: ev.Timestamp,
	}
	if err := ix.db.Save(&exec).Error; err != nil {
		ix.logger.Error("save execution fail", "err", err)
	}
}

func (ix *Indexer) handleEventQueueProcessed(event abci.Event) {
	ev := gov_types.DecodeEventQueueProcessed(event)
	if ev == nil {
		ix.logger.Error("decode event fail", "event", event)
		return
	}
	run := BatchRun{
		Processed:  ev.Processed,
		Successful: ev.Successful,
		Failed:     ev.Failed,
		Timestamp:  ev.Timestamp,
	}
	if err := ix.db.Save(&run).Error; err != nil {
		ix.logger.Error("save batch run fail", "err", err)
	}
}

func (ix *Indexer) GetRegistrations(page, pageSize int) (regs []Registration, total uint64, err error) {
	regs = make([]Registration, 0)
	err = ix.db.Order("id desc").Offset(page * pageSize).Limit(pageSize).Find(&regs).Error
	if err != nil {
		return
	}
	err = ix.db.Model(&Registration{}).Count(&total).Error
	return
}

func (ix *Indexer) GetExecutionsByProposal(proposal uint64) (execs []Execution, err error) {
	execs = make([]Execution, 0)
	err = ix.db.Where("proposal = ?", proposal).Order("id asc").Find(&execs).Error
	return
}

func (ix *Indexer) GetBatchRuns(page, pageSize int) (runs []BatchRun, total uint64, err error) {
	runs = make([]BatchRun, 0)
	err = ix.db.Order("id desc").Offset(page * pageSize).Limit(pageSize).Find(&runs).Error
	if err != nil {
		return
	}
	err = ix.db.Model(&BatchRun{}).Count(&total).Error
	return
}
