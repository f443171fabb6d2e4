// Package serve exposes a scanner.Core over newline-delimited JSON.
package serve

import (
	"bufio"
	"context"
	"encoding/json"
	"io"

	"github.com/praetorian-inc/rejigs/pkg/scanner"
)

// Version is the server protocol version
const Version = "1.0.0"

// Server answers check and identify requests read from a stream
type Server struct {
	core    *scanner.Core
	encoder *json.Encoder
	decoder *json.Decoder
}

// NewServer creates a new streaming server
func NewServer(core *scanner.Core, in io.Reader, out io.Writer) *Server {
	return &Server{
		core:    core,
		encoder: json.NewEncoder(out),
		decoder: json.NewDecoder(bufio.NewReader(in)),
	}
}

// Run sends the ready response, then answers requests until the input ends,
// a close request arrives or ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.sendOK(TypeReady, ReadyData{Version: Version})

	reqChan := make(chan Request, 1)
	errChan := make(chan error, 1)

	go func() {
		for {
			var req Request
			if err := s.decoder.Decode(&req); err != nil {
				errChan <- err
				return
			}
			select {
			case reqChan <- req:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req := <-reqChan:
			if s.processRequest(req) {
				return nil
			}
		case err := <-errChan:
			// The reader stops after its last request; answer it first.
			select {
			case req := <-reqChan:
				if s.processRequest(req) {
					return nil
				}
			default:
			}
			if err != io.EOF {
				s.sendError(TypeDecode, err.Error())
			}
			return nil
		}
	}
}

// processRequest handles a single request and returns true if the server should exit
func (s *Server) processRequest(req Request) bool {
	switch req.Type {
	case TypeCheck:
		s.handleCheck(req.Payload)
	case TypeCheckBatch:
		s.handleCheckBatch(req.Payload)
	case TypeIdentify:
		s.handleIdentify(req.Payload)
	case TypeList:
		s.sendOK(TypeList, ListData{Definitions: s.core.Definitions()})
	case TypeClose:
		return true
	default:
		s.sendError(req.Type, "unknown request type: "+req.Type)
	}
	return false
}

func (s *Server) handleCheck(payload json.RawMessage) {
	var p CheckPayload
	if err := decodePayload(payload, &p); err != nil {
		s.sendError(TypeCheck, err.Error())
		return
	}

	result, err := s.core.Check(p.Pattern, p.Input, p.Message)
	if err != nil {
		s.sendError(TypeCheck, err.Error())
		return
	}
	s.sendOK(TypeCheck, result)
}

func (s *Server) handleCheckBatch(payload json.RawMessage) {
	var p CheckBatchPayload
	if err := decodePayload(payload, &p); err != nil {
		s.sendError(TypeCheckBatch, err.Error())
		return
	}
	s.sendOK(TypeCheckBatch, s.core.CheckBatch(p.Items))
}

func (s *Server) handleIdentify(payload json.RawMessage) {
	var p IdentifyPayload
	if err := decodePayload(payload, &p); err != nil {
		s.sendError(TypeIdentify, err.Error())
		return
	}
	s.sendOK(TypeIdentify, s.core.Identify(p.Input))
}

// decodePayload unmarshals payload into v. A missing payload leaves v zero.
func decodePayload(payload json.RawMessage, v any) error {
	if len(payload) == 0 {
		return nil
	}
	return json.Unmarshal(payload, v)
}

func (s *Server) sendOK(reqType string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.sendError(reqType, err.Error())
		return
	}
	s.encoder.Encode(Response{
		Success: true,
		Type:    reqType,
		Data:    data,
	})
}

func (s *Server) sendError(reqType, msg string) {
	s.encoder.Encode(Response{
		Success: false,
		Type:    reqType,
		Error:   msg,
	})
}
