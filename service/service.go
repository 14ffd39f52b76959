package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/calehh/gov-core/indexer"
	"github.com/calehh/gov-core/registry"
	"github.com/calehh/gov-core/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gin-gonic/gin"
)

// Service exposes the registry over HTTP for orchestration tooling and
// the CLI. The indexer is optional; history routes 404 without it.
type Service struct {
	engine     *gin.Engine
	reg        *registry.Registry
	cap        *registry.Capability
	indexer    *indexer.Indexer
	listenAddr string
}

func NewService(listenAddr string, reg *registry.Registry, cap *registry.Capability, ix *indexer.Indexer) *Service {
	r := gin.Default()
	s := &Service{
		engine:     r,
		reg:        reg,
		cap:        cap,
		indexer:    ix,
		listenAddr: listenAddr,
	}
	s.engine.POST("/register", s.handleRegister)
	s.engine.POST("/approve", s.handleApprove)
	s.engine.POST("/execute", s.handleExecute)
	s.engine.POST("/processQueue", s.handleProcessQueue)
	s.engine.POST("/addExecutor", s.handleAddExecutor)
	s.engine.POST("/getProposal", s.handleGetProposal)
	s.engine.POST("/getStats", s.handleGetStats)
	if ix != nil {
		s.engine.POST("/getRegistrations", s.handleGetRegistrations)
		s.engine.POST("/getExecutions", s.handleGetExecutions)
		s.engine.POST("/getBatchRuns", s.handleGetBatchRuns)
	}
	return s
}

func (s *Service) Start() {
	s.engine.Run(s.listenAddr)
}

func (s *Service) Handler() http.Handler {
	return s.engine
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, registry.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, registry.ErrProposalNotFound):
		return http.StatusNotFound
	case errors.Is(err, registry.ErrDuplicateProposal), errors.Is(err, registry.ErrAlreadyExecuted):
		return http.StatusConflict
	case errors.Is(err, registry.ErrInvalidProposalType), errors.Is(err, registry.ErrNotApproved):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type RegisterReq struct {
	Id          uint64 `json:"id"`
	Type        uint64 `json:"type"`
	Creator     string `json:"creator"`
	Description string `json:"description"`
	// DescriptionHash overrides Description when the caller already
	// holds the digest; hex encoded.
	DescriptionHash string `json:"descriptionHash"`
}

func (s *Service) handleRegister(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var descHash common.Hash
	if req.DescriptionHash != "" {
		descHash = common.HexToHash(req.DescriptionHash)
	} else {
		descHash = crypto.Keccak256Hash([]byte(req.Description))
	}
	err := s.reg.Register(req.Id, types.ProposalType(req.Type), descHash, req.Creator)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": req.Id, "descriptionHash": descHash.Hex()})
}

type ApproveReq struct {
	Id uint64 `json:"id"`
}

func (s *Service) handleApprove(c *gin.Context) {
	var req ApproveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.reg.Approve(req.Id); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": req.Id, "queueLength": s.reg.QueueLength()})
}

type ExecuteReq struct {
	Id       uint64 `json:"id"`
	Executor string `json:"executor"`
}

func (s *Service) handleExecute(c *gin.Context) {
	var req ExecuteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	succ, err := s.reg.Execute(context.Background(), s.cap, req.Id, req.Executor)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": req.Id, "success": succ})
}

type ProcessQueueReq struct {
	Max      uint64 `json:"max"`
	Executor string `json:"executor"`
}

func (s *Service) handleProcessQueue(c *gin.Context) {
	var req ProcessQueueReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := s.reg.ProcessQueue(context.Background(), s.cap, req.Max, req.Executor)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error(), "partial": res})
		return
	}
	c.JSON(http.StatusOK, res)
}

type AddExecutorReq struct {
	Executor string `json:"executor"`
}

func (s *Service) handleAddExecutor(c *gin.Context) {
	var req AddExecutorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.cap.AddExecutor(req.Executor)
	c.JSON(http.StatusOK, gin.H{"executors": s.cap.Executors()})
}

type GetProposalReq struct {
	Id uint64 `json:"id"`
}

func (s *Service) handleGetProposal(c *gin.Context) {
	var req GetProposalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := s.reg.Proposal(req.Id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Service) handleGetStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.reg.GetStats())
}

type PageReq struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

func (s *Service) handleGetRegistrations(c *gin.Context) {
	var req PageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	regs, total, err := s.indexer.GetRegistrations(req.Page, req.PageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"registrations": regs, "total": total})
}

type GetExecutionsReq struct {
	Proposal uint64 `json:"proposal"`
}

func (s *Service) handleGetExecutions(c *gin.Context) {
	var req GetExecutionsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	execs, err := s.indexer.GetExecutionsByProposal(req.Proposal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"executions": execs})
}

func (s *Service) handleGetBatchRuns(c *gin.Context) {
	var req PageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	runs, total, err := s.indexer.GetBatchRuns(req.Page, req.PageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs, "total": total})
}
