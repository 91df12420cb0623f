package cli

import (
	"errors"
	"io"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/rlmsinclair/lhc/internal/cli/mocks"
)

func TestRealSpinner(t *testing.T) {
	t.Parallel()

	rs := newSpinner(io.Discard)

	// Just verify these methods don't panic
	rs.Start()
	rs.UpdateSuffix(" test")
	rs.Stop()
}

func TestRunWithSpinner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockS := mocks.NewMockSpinner(ctrl)
	original := newSpinner
	defer func() { newSpinner = original }()
	newSpinner = func(io.Writer) Spinner { return mockS }

	gomock.InOrder(
		mockS.EXPECT().UpdateSuffix(" composing reports"),
		mockS.EXPECT().Start(),
		mockS.EXPECT().Stop(),
	)

	ran := false
	err := RunWithSpinner(io.Discard, "composing reports", false, func() error {
		ran = true
		return nil
	})
	if err != nil {
		t.Errorf("RunWithSpinner returned %v", err)
	}
	if !ran {
		t.Error("fn should have run")
	}
}

func TestRunWithSpinner_PropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockS := mocks.NewMockSpinner(ctrl)
	original := newSpinner
	defer func() { newSpinner = original }()
	newSpinner = func(io.Writer) Spinner { return mockS }

	mockS.EXPECT().UpdateSuffix(gomock.Any())
	mockS.EXPECT().Start()
	mockS.EXPECT().Stop()

	want := errors.New("boom")
	if err := RunWithSpinner(io.Discard, "work", false, func() error { return want }); !errors.Is(err, want) {
		t.Errorf("error = %v, want %v", err, want)
	}
}

func TestRunWithSpinner_Quiet(t *testing.T) {
	original := newSpinner
	defer func() { newSpinner = original }()
	newSpinner = func(io.Writer) Spinner {
		t.Fatal("quiet mode must not create a spinner")
		return nil
	}

	ran := false
	if err := RunWithSpinner(io.Discard, "work", true, func() error { ran = true; return nil }); err != nil {
		t.Errorf("RunWithSpinner returned %v", err)
	}
	if !ran {
		t.Error("fn should have run")
	}
}
