package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes carried on wrapped handler errors. Batch runs are short-lived,
// so the codes distinguish "the message was bad" from "the run died" for
// log scrapers.
const (
	messageRejectedCode = "BATCH_MESSAGE_REJECTED"
	runCanceledCode     = "BATCH_RUN_CANCELED"
	runTimedOutCode     = "BATCH_RUN_TIMED_OUT"
	runAbortedCode      = "BATCH_RUN_ABORTED"
	runFailedCode       = "BATCH_RUN_FAILED"
)

// wrapValidationError marks a message that failed its ozzo Validate before
// the service ever ran.
func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command message rejected").
		WithTextCode(messageRejectedCode)
}

func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return goerrors.Wrap(err, goerrors.CategoryCommand, "batch run canceled").
			WithTextCode(runCanceledCode)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return goerrors.Wrap(err, goerrors.CategoryCommand, "batch run exceeded its deadline").
			WithTextCode(runTimedOutCode)
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "batch run aborted").
		WithTextCode(runAbortedCode)
}

func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "batch run failed").
		WithTextCode(runFailedCode)
}
