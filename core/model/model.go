// Package model は学習器の基盤となる状態管理と共通インターフェースを提供します。
package model

import "gonum.org/v1/gonum/mat"

// EstimatorState はモデルの学習状態を表す
type EstimatorState int

const (
	// NotFitted はモデルが未学習の状態
	NotFitted EstimatorState = iota
	// Fitted はモデルが学習済みの状態
	Fitted
)

// BaseEstimator は全てのモデルの基底となる構造体
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted はモデルが学習済みかどうかを返す
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted はモデルを学習済み状態に設定する
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset はモデルを初期状態にリセットする
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は入力データに対する予測を行う
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Scorer is the interface for models that can compute a score.
type Scorer interface {
	// Score returns the mean accuracy of the prediction as a fraction in [0, 1].
	Score(X mat.Matrix, y mat.Matrix) (float64, error)
}
