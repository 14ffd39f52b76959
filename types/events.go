package types

import (
	"fmt"
	"strconv"

	abci "github.com/cometbft/cometbft/abci/types"
)

const (
	EventRegisteredType     = "proposal_registered"
	EventApprovedType       = "proposal_approved"
	EventExecutionType      = "proposal_execution"
	EventQueueProcessedType = "queue_processed"
)

type EventRegistered struct {
	Proposal  uint64 `json:"proposal"`
	Type      uint64 `json:"type"`
	Creator   string `json:"creator"`
	Timestamp uint64 `json:"timestamp"`
}

func EncodeEventRegistered(event *EventRegistered) abci.Event {
	return abci.Event{
		Type: EventRegisteredType,
		Attributes: []abci.EventAttribute{
			{Key: "proposal", Value: fmt.Sprintf("%v", event.Proposal), Index: true},
			{Key: "type", Value: fmt.Sprintf("%v", event.Type), Index: true},
			{Key: "creator", Value: event.Creator, Index: false},
			{Key: "timestamp", Value: fmt.Sprintf("%v", event.Timestamp), Index: false},
		},
	}
}

func DecodeEventRegistered(originEvent abci.Event) *EventRegistered {
	event := &EventRegistered{}
	for _, v := range originEvent.Attributes {
		switch v.Key {
		case "proposal":
			proposal, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Proposal = proposal
		case "type":
			tp, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Type = tp
		case "creator":
			event.Creator = v.Value
		case "timestamp":
			ts, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Timestamp = ts
		}
	}
	return event
}

type EventApproved struct {
	Proposal  uint64 `json:"proposal"`
	Type      uint64 `json:"type"`
	Timestamp uint64 `json:"timestamp"`
}

func EncodeEventApproved(event *EventApproved) abci.Event {
	return abci.Event{
		Type: EventApprovedType,
		Attributes: []abci.EventAttribute{
			{Key: "proposal", Value: fmt.Sprintf("%v", event.Proposal), Index: true},
			{Key: "type", Value: fmt.Sprintf("%v", event.Type), Index: false},
			{Key: "timestamp", Value: fmt.Sprintf("%v", event.Timestamp), Index: false},
		},
	}
}

func DecodeEventApproved(originEvent abci.Event) *EventApproved {
	event := &EventApproved{}
	for _, v := range originEvent.Attributes {
		switch v.Key {
		case "proposal":
			proposal, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Proposal = proposal
		case "type":
			tp, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Type = tp
		case "timestamp":
			ts, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Timestamp = ts
		}
	}
	return event
}

type EventExecution struct {
	Proposal  uint64 `json:"proposal"`
	Type      uint64 `json:"type"`
	Executor  string `json:"executor"`
	Success   bool   `json:"success"`
	Timestamp uint64 `json:"timestamp"`
}

func EncodeEventExecution(event *EventExecution) abci.Event {
	return abci.Event{
		Type: EventExecutionType,
		Attributes: []abci.EventAttribute{
			{Key: "proposal", Value: fmt.Sprintf("%v", event.Proposal), Index: true},
			{Key: "type", Value: fmt.Sprintf("%v", event.Type), Index: false},
			{Key: "executor", Value: event.Executor, Index: true},
			{Key: "success", Value: fmt.Sprintf("%v", event.Success), Index: false},
			{Key: "timestamp", Value: fmt.Sprintf("%v", event.Timestamp), Index: false},
		},
	}
}

func DecodeEventExecution(originEvent abci.Event) *EventExecution {
	event := &EventExecution{}
	for _, v := range originEvent.Attributes {
		switch v.Key {
		case "proposal":
			proposal, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Proposal = proposal
		case "type":
			tp, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Type = tp
		case "executor":
			event.Executor = v.Value
		case "success":
			succ, err := strconv.ParseBool(v.Value)
			if err != nil {
				return nil
			}
			event.Success = succ
		case "timestamp":
			ts, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Timestamp = ts
		}
	}
	return event
}

type EventQueueProcessed struct {
	Processed  uint64 `json:"processed"`
	Successful uint64 `json:"successful"`
	Failed     uint64 `json:"failed"`
	Timestamp  uint64 `json:"timestamp"`
}

func EncodeEventQueueProcessed(event *EventQueueProcessed) abci.Event {
	return abci.Event{
		Type: EventQueueProcessedType,
		Attributes: []abci.EventAttribute{
			{Key: "processed", Value: fmt.Sprintf("%v", event.Processed), Index: false},
			{Key: "successful", Value: fmt.Sprintf("%v", event.Successful), Index: false},
			{Key: "failed", Value: fmt.Sprintf("%v", event.Failed), Index: false},
			{Key: "timestamp", Value: fmt.Sprintf("%v", event.Timestamp), Index: false},
		},
	}
}

func DecodeEventQueueProcessed(originEvent abci.Event) *EventQueueProcessed {
	event := &EventQueueProcessed{}
	for _, v := range originEvent.Attributes {
		switch v.Key {
		case "processed":
			processed, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Processed = processed
		case "successful":
			successful, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Successful = successful
		case "failed":
			failed, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Failed = failed
		case "timestamp":
			ts, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Timestamp = ts
		}
	}
	return event
}
