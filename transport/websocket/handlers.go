package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/beng262/InfiniteTicTacToe/internal/apperror"
)

func (that *Server) handleGameTurn(ctx context.Context, c *client, msg *Message) error {
	log := that.logger.With("method", "handleGameTurn", "connectionID", c.id)

	var payloadReq Payload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return that.sendErrorResponse(c, msg.Action, fmt.Errorf("%w: %w", apperror.ErrMalformedMessage, err))
	}

	if !payloadReq.Move.complete() {
		log.Warn("Move is missing in payload")
		return that.sendErrorResponse(c, msg.Action, fmt.Errorf("%w: move with row and col is required", apperror.ErrMalformedMessage))
	}

	row, col := *payloadReq.Move.Row, *payloadReq.Move.Col

	outcome, err := that.relay.MakeTurn(ctx, c.id, row, col)
	if err != nil {
		log.Info("turn rejected", "row", row, "col", col, "code", apperror.Code(err))
		return that.sendErrorResponse(c, msg.Action, err)
	}

	payloadResp := Payload{
		Move:    NewMove(outcome.Cell.Row, outcome.Cell.Col),
		Evicted: outcome.Evicted,
		Winner:  outcome.Winner,
	}

	if err = that.hub.send(c, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("Player made a turn", "mark", outcome.Player, "row", row, "col", col)

	return nil
}

func (that *Server) handleGameReset(ctx context.Context, c *client, msg *Message) error {
	log := that.logger.With("method", "handleGameReset", "connectionID", c.id)

	if err := that.relay.Reset(ctx, c.id); err != nil {
		log.Info("reset rejected", "code", apperror.Code(err))
		return that.sendErrorResponse(c, msg.Action, err)
	}

	if err := that.hub.send(c, msg.Action, Payload{}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("game reset")

	return nil
}

func (that *Server) sendErrorResponse(c *client, action string, cause error) error {
	payload := Payload{
		Error: cause.Error(),
		Code:  apperror.Code(cause),
	}

	if err := that.hub.send(c, action, payload); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}
