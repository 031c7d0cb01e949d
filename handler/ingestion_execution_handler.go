package handler

import (
	"context"
	"errors"
)

func (h *IngestionHandler) IngestionExecution(ctx context.Context) error {
	acquired, jobID, err := h.Usecase.TryAcquireJob(ctx)
	if err != nil {
		return err
	}

	if !acquired {
		return errors.New("no job handled")
	}

	defer h.Usecase.UnlockJob(ctx, jobID)

	err = h.Usecase.ProcessIngestionJob(ctx, jobID)
	if err != nil {
		return err
	}

	return nil
}
