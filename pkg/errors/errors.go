// Package errors はプロジェクト全体のエラーハンドリングと警告システムを提供します。
// 決定木の構築・評価・枝刈りにおける契約違反を構造化されたエラー情報として提供します。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("GoID3-Warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// これにより、PruneTrialWarningなどのカスタム警告の処理方法を制御できます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが利用可能な場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	// zerologが設定されている場合は優先的に使用
	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	// フォールバック: 従来のハンドラ
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	警告型
//
// ===========================================================================

// PruneTrialWarning は枝刈り試行が評価に失敗して中断された場合に発生する警告です。
// 試行はスキップされ、それまでの最良候補には影響しません。
type PruneTrialWarning struct {
	Trial int
	Err   error
}

func (w *PruneTrialWarning) Error() string {
	return fmt.Sprintf("pruning trial %d aborted: %v", w.Trial, w.Err)
}

func (w *PruneTrialWarning) Unwrap() error {
	return w.Err
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *PruneTrialWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Int("trial", w.Trial).
		AnErr("cause", w.Err).
		Str("type", "PruneTrialWarning")
}

// NewPruneTrialWarning は新しいPruneTrialWarningを作成します。
func NewPruneTrialWarning(trial int, err error) *PruneTrialWarning {
	return &PruneTrialWarning{Trial: trial, Err: err}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// NotFittedError はモデルが未学習の状態で `Predict` や `Score` を呼び出した場合のエラーです。
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("goid3: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError は新しいNotFittedErrorを作成し、スタックトレースを付与します。
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError は入力データの次元が期待値と異なる場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("goid3: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValidationError は入力パラメータの検証に失敗した場合のエラーです。
// `ValueError`よりも具体的なバリデーションロジックの失敗を示します。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("goid3: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
// 例えば、0/1以外のセル値を含むデータセットを渡した場合など。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("goid3: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ModelError は学習器に関する一般的なエラーです。
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("goid3: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("goid3: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError は新しいModelErrorを作成し、スタックトレースを付与します。
func NewModelError(op, kind string, err error) error {
	modelErr := &ModelError{Op: op, Kind: kind, Err: err}
	return errors.WithStack(modelErr)
}

// ===========================================================================
//
//	決定木の構造エラー型
//
// ===========================================================================

// InvalidStateError は操作が木の現在の状態と矛盾する場合のエラーです。
// 例えば、既にルートを持つ木に対して再度ルートを追加しようとした場合など。
type InvalidStateError struct {
	Op    string
	State string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("goid3: %s: invalid state: %s", e.Op, e.State)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidStateError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("state", e.State).
		Str("type", "InvalidStateError")
}

// NewInvalidStateError は新しいInvalidStateErrorを作成し、スタックトレースを付与します。
func NewInvalidStateError(op, state string) error {
	err := &InvalidStateError{Op: op, State: state}
	return errors.WithStack(err)
}

// InvalidArgumentError は引数が許容される定義域の外にある場合のエラーです。
// 例えば、分岐の値として0/1以外を指定した場合など。
type InvalidArgumentError struct {
	Op     string
	Name   string
	Value  interface{}
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("goid3: %s: invalid argument %s=%v: %s", e.Op, e.Name, e.Value, e.Reason)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidArgumentError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("argument", e.Name).
		Interface("value", e.Value).
		Str("reason", e.Reason).
		Str("type", "InvalidArgumentError")
}

// NewInvalidArgumentError は新しいInvalidArgumentErrorを作成し、スタックトレースを付与します。
func NewInvalidArgumentError(op, name string, value interface{}, reason string) error {
	err := &InvalidArgumentError{Op: op, Name: name, Value: value, Reason: reason}
	return errors.WithStack(err)
}

// EmptyTreeError はルートを持たない木に対して評価や走査を行った場合のエラーです。
type EmptyTreeError struct {
	Op string
}

func (e *EmptyTreeError) Error() string {
	return fmt.Sprintf("goid3: %s: tree has no root", e.Op)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *EmptyTreeError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("type", "EmptyTreeError")
}

// NewEmptyTreeError は新しいEmptyTreeErrorを作成し、スタックトレースを付与します。
func NewEmptyTreeError(op string) error {
	err := &EmptyTreeError{Op: op}
	return errors.WithStack(err)
}

// MissingBranchError は走査中に行の値に対応する枝が存在しない場合のエラーです。
// 行が属性自体を持たない場合はBranchに-1が入ります。
type MissingBranchError struct {
	Attribute string
	Branch    int
	NodeIndex int
}

func (e *MissingBranchError) Error() string {
	if e.Branch < 0 {
		return fmt.Sprintf("goid3: traverse: row has no value for attribute '%s' (node %d)", e.Attribute, e.NodeIndex)
	}
	return fmt.Sprintf("goid3: traverse: no branch for %s = %d (node %d)", e.Attribute, e.Branch, e.NodeIndex)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *MissingBranchError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("attribute", e.Attribute).
		Int("branch", e.Branch).
		Int("node_index", e.NodeIndex).
		Str("type", "MissingBranchError")
}

// NewMissingBranchError は新しいMissingBranchErrorを作成し、スタックトレースを付与します。
func NewMissingBranchError(attribute string, branch, nodeIndex int) error {
	err := &MissingBranchError{Attribute: attribute, Branch: branch, NodeIndex: nodeIndex}
	return errors.WithStack(err)
}

// InvalidLeafError は走査がラベルを持たない葉に到達した場合のエラーです。
type InvalidLeafError struct {
	NodeIndex int
}

func (e *InvalidLeafError) Error() string {
	return fmt.Sprintf("goid3: traverse: leaf node %d has no label", e.NodeIndex)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidLeafError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("node_index", e.NodeIndex).
		Str("type", "InvalidLeafError")
}

// NewInvalidLeafError は新しいInvalidLeafErrorを作成し、スタックトレースを付与します。
func NewInvalidLeafError(nodeIndex int) error {
	err := &InvalidLeafError{NodeIndex: nodeIndex}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	数値計算エラー型
//
// ===========================================================================

// NumericalInstabilityError は数値計算が不安定になった場合のエラーです。
// NaN、Inf、オーバーフロー、アンダーフローなどを検出します。
type NumericalInstabilityError struct {
	Operation string                 // 発生した操作（例: "impurity", "log_loss"）
	Values    []float64              // 問題のある値
	Context   map[string]interface{} // デバッグ用の追加コンテキスト情報
	Iteration int                    // 発生したイテレーション番号
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("goid3: numerical instability detected in %s at iteration %d. Values: [%s]",
		e.Operation, e.Iteration, valStr)
}

// NewNumericalInstabilityError は新しいNumericalInstabilityErrorを作成します。
func NewNumericalInstabilityError(operation string, values []float64, iteration int) error {
	err := &NumericalInstabilityError{
		Operation: operation,
		Values:    values,
		Iteration: iteration,
		Context:   make(map[string]interface{}),
	}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")
)
