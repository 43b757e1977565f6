package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		kind     string
		err      error
		wantMsg  string
		hasStack bool
	}{
		{
			name:     "with original error",
			op:       "Fit",
			kind:     "invalid input",
			err:      fmt.Errorf("test error"),
			wantMsg:  "goid3: Fit: invalid input: test error",
			hasStack: true,
		},
		{
			name:     "without original error",
			op:       "Predict",
			kind:     "not fitted",
			err:      nil,
			wantMsg:  "goid3: Predict: not fitted",
			hasStack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			// 基本的なエラーメッセージの確認
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("Expected stack trace to contain test file name")
				}
			}

			// ModelError型にキャスト可能か確認
			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("Predict", 10, 5, 0)

	// 基本的なエラーメッセージの確認
	want := "goid3: Predict: dimension mismatch on axis 0 (rows). Expected 10, got 5"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// DimensionError型にキャスト可能か確認
	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Error("Error should be castable to *DimensionError")
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("ID3Classifier", "Predict")

	// 基本的なエラーメッセージの確認
	want := "goid3: ID3Classifier: this model is not fitted yet. Call Fit() before using Predict()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// NotFittedError型にキャスト可能か確認
	var notFittedErr *NotFittedError
	if !As(err, &notFittedErr) {
		t.Error("Error should be castable to *NotFittedError")
	}
}

func TestNewValueError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		message string
		wantMsg string
	}{
		{
			name:    "non-binary cell value",
			op:      "NewDataset",
			message: "cell value must be 0 or 1: got 2",
			wantMsg: "goid3: NewDataset: cell value must be 0 or 1: got 2",
		},
		{
			name:    "missing target",
			op:      "NewDataset",
			message: "row 3 has no value for target 'Class'",
			wantMsg: "goid3: NewDataset: row 3 has no value for target 'Class'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValueError(tt.op, tt.message)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// ValueError型にキャスト可能か確認
			var valErr *ValueError
			if !As(err, &valErr) {
				t.Error("Error should be castable to *ValueError")
			}
		})
	}
}

func TestNewInvalidStateError(t *testing.T) {
	err := NewInvalidStateError("AddRoot", "tree already has a root")

	// 基本的なエラーメッセージの確認
	want := "goid3: AddRoot: invalid state: tree already has a root"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// InvalidStateError型にキャスト可能か確認
	var stateErr *InvalidStateError
	if !As(err, &stateErr) {
		t.Error("Error should be castable to *InvalidStateError")
	}
	if stateErr.Op != "AddRoot" {
		t.Errorf("Op = %v, want AddRoot", stateErr.Op)
	}
}

func TestNewInvalidArgumentError(t *testing.T) {
	err := NewInvalidArgumentError("AddChild", "branch", 2, "must be 0 or 1")

	// 基本的なエラーメッセージの確認
	want := "goid3: AddChild: invalid argument branch=2: must be 0 or 1"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// InvalidArgumentError型にキャスト可能か確認
	var argErr *InvalidArgumentError
	if !As(err, &argErr) {
		t.Error("Error should be castable to *InvalidArgumentError")
	}
	if argErr.Name != "branch" {
		t.Errorf("Name = %v, want branch", argErr.Name)
	}
}

func TestNewEmptyTreeError(t *testing.T) {
	err := NewEmptyTreeError("Classify")

	// 基本的なエラーメッセージの確認
	want := "goid3: Classify: tree has no root"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// EmptyTreeError型にキャスト可能か確認
	var emptyErr *EmptyTreeError
	if !As(err, &emptyErr) {
		t.Error("Error should be castable to *EmptyTreeError")
	}
}

func TestNewMissingBranchError(t *testing.T) {
	tests := []struct {
		name      string
		attribute string
		branch    int
		nodeIndex int
		wantMsg   string
	}{
		{
			name:      "branch value without child",
			attribute: "Outlook",
			branch:    1,
			nodeIndex: 4,
			wantMsg:   "goid3: traverse: no branch for Outlook = 1 (node 4)",
		},
		{
			name:      "row missing the attribute",
			attribute: "Outlook",
			branch:    -1,
			nodeIndex: 4,
			wantMsg:   "goid3: traverse: row has no value for attribute 'Outlook' (node 4)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewMissingBranchError(tt.attribute, tt.branch, tt.nodeIndex)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// MissingBranchError型にキャスト可能か確認
			var branchErr *MissingBranchError
			if !As(err, &branchErr) {
				t.Error("Error should be castable to *MissingBranchError")
			}
			if branchErr.NodeIndex != tt.nodeIndex {
				t.Errorf("NodeIndex = %v, want %v", branchErr.NodeIndex, tt.nodeIndex)
			}
		})
	}
}

func TestNewInvalidLeafError(t *testing.T) {
	err := NewInvalidLeafError(3)

	// 基本的なエラーメッセージの確認
	want := "goid3: traverse: leaf node 3 has no label"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// InvalidLeafError型にキャスト可能か確認
	var leafErr *InvalidLeafError
	if !As(err, &leafErr) {
		t.Error("Error should be castable to *InvalidLeafError")
	}
}

func TestNewPruneTrialWarning(t *testing.T) {
	warn := NewPruneTrialWarning(2, ErrEmptyData)

	// 基本的なエラーメッセージの確認
	want := "pruning trial 2 aborted: empty data"
	if warn.Error() != want {
		t.Errorf("Error() = %v, want %v", warn.Error(), want)
	}

	// Unwrapで元のエラーが取得できるか確認
	if !Is(warn, ErrEmptyData) {
		t.Error("Expected Is(warn, ErrEmptyData) to be true")
	}

	// PruneTrialWarning型へのキャストのみ確認
	var trialWarn *PruneTrialWarning
	if !As(warn, &trialWarn) {
		t.Error("Warning should be castable to *PruneTrialWarning")
	}
}

func TestWarnHandler(t *testing.T) {
	// ハンドラを差し替えて警告を捕捉する
	var captured error
	SetWarningHandler(func(w error) {
		captured = w
	})
	defer SetWarningHandler(func(w error) {})

	Warn(NewPruneTrialWarning(5, ErrEmptyData))

	if captured == nil {
		t.Fatal("Expected warning handler to capture the warning")
	}

	var trialWarn *PruneTrialWarning
	if !As(captured, &trialWarn) {
		t.Fatal("Captured warning should be castable to *PruneTrialWarning")
	}
	if trialWarn.Trial != 5 {
		t.Errorf("Trial = %v, want 5", trialWarn.Trial)
	}
}

func TestWrapAndIs(t *testing.T) {
	// 元のエラー
	baseErr := ErrEmptyData

	// ラップ
	wrapped := Wrap(baseErr, "in ID3Classifier.Fit")

	// Is関数でチェック
	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}

	// エラーメッセージの確認
	if !strings.Contains(wrapped.Error(), "in ID3Classifier.Fit") {
		t.Error("Expected wrapped error to contain wrapping message")
	}
}

func TestWrapf(t *testing.T) {
	// 元のエラー
	baseErr := ErrEmptyData

	// フォーマット付きラップ
	wrapped := Wrapf(baseErr, "in %s: expected %d, got %d", "Predict", 10, 5)

	// Is関数でチェック
	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}

	// エラーメッセージの確認
	expectedMsg := "in Predict: expected 10, got 5"
	if !strings.Contains(wrapped.Error(), expectedMsg) {
		t.Errorf("Expected wrapped error to contain %q", expectedMsg)
	}
}

func TestErrorChaining(t *testing.T) {
	// エラーチェーンの作成
	err1 := fmt.Errorf("base error")
	err2 := Wrap(err1, "wrapped once")
	err3 := NewModelError("Prune", "trial failed", err2)

	// チェーン全体を確認
	if !strings.Contains(err3.Error(), "base error") {
		t.Error("Expected error chain to contain base error")
	}

	// スタックトレースの確認（詳細表示）
	formatted := fmt.Sprintf("%+v", err3)
	if !strings.Contains(formatted, "errors_test.go") {
		t.Error("Expected detailed error to contain stack trace")
	}
}
