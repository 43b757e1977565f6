package metrics

import (
	"math"
	"sort"

	"github.com/YuminosukeSato/goid3/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// logLossEpsilon は log(0) を避けるための予測値クリッピング幅
const logLossEpsilon = 1e-15

// Accuracy は正解率（一致した割合 [0, 1]）を計算する
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	// 入力検証
	if yTrue == nil || yPred == nil {
		return 0, errors.NewValueError("Accuracy", "nil vector")
	}
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("Accuracy", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("Accuracy", n, yPred.Len(), 0)
	}

	matches := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			matches++
		}
	}

	return float64(matches) / float64(n), nil
}

// AccuracyMatrix は行列形式の入力に対して正解率を計算する。
// 複数列の場合は先頭列のみを使う。
func AccuracyMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	// 入力検証
	if yTrue == nil || yPred == nil {
		return 0, errors.NewValueError("AccuracyMatrix", "nil matrix")
	}

	rTrue, cTrue := yTrue.Dims()
	rPred, cPred := yPred.Dims()

	if rTrue == 0 || cTrue == 0 || rPred == 0 || cPred == 0 {
		return 0, errors.NewValueError("AccuracyMatrix", "empty matrix")
	}

	if rTrue != rPred {
		return 0, errors.NewDimensionError("AccuracyMatrix", rTrue, rPred, 0)
	}

	// 先頭列をVecDenseに変換して正解率を計算
	yTrueVec := mat.NewVecDense(rTrue, nil)
	yPredVec := mat.NewVecDense(rPred, nil)

	for i := 0; i < rTrue; i++ {
		yTrueVec.SetVec(i, yTrue.At(i, 0))
		yPredVec.SetVec(i, yPred.At(i, 0))
	}

	return Accuracy(yTrueVec, yPredVec)
}

// ClassificationError は誤分類率（1 - Accuracy）を計算する
func ClassificationError(yTrue, yPred *mat.VecDense) (float64, error) {
	acc, err := Accuracy(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return 1 - acc, nil
}

// AUC はROC曲線下面積をランク和（Mann-Whitney U統計量）で計算する。
// 同順位の予測値には平均ランクを割り当てる。
// 正例または負例しか存在しない場合は未定義のため0.5を返す。
func AUC(yTrue, yPred *mat.VecDense) (float64, error) {
	// 入力検証
	if yTrue == nil || yPred == nil {
		return 0, errors.NewValueError("AUC", "nil vector")
	}
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("AUC", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("AUC", n, yPred.Len(), 0)
	}

	positives := 0
	for i := 0; i < n; i++ {
		switch yTrue.AtVec(i) {
		case 1:
			positives++
		case 0:
		default:
			return 0, errors.Newf("AUC: labels must be 0 or 1, got %v", yTrue.AtVec(i))
		}
	}
	negatives := n - positives

	// 片方のクラスしか無い場合はAUCが定義できない
	if positives == 0 || negatives == 0 {
		return 0.5, nil
	}

	// 予測値の昇順でランク付けする
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return yPred.AtVec(order[a]) < yPred.AtVec(order[b])
	})

	// 同値グループに平均ランクを割り当て、正例のランク和を取る
	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j < n && yPred.AtVec(order[j]) == yPred.AtVec(order[i]) {
			j++
		}
		// ランクは1始まり、グループ [i, j) の平均
		avgRank := float64(i+j+1) / 2
		for k := i; k < j; k++ {
			ranks[order[k]] = avgRank
		}
		i = j
	}

	var rankSum float64
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == 1 {
			rankSum += ranks[i]
		}
	}

	// AUC = (R+ - n+(n+ + 1)/2) / (n+ * n-)
	u := rankSum - float64(positives)*float64(positives+1)/2
	return u / (float64(positives) * float64(negatives)), nil
}

// AUCMatrix は行列形式の入力に対してAUCを計算する。
// 複数列の場合は先頭列のみを使う。
func AUCMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	// 入力検証
	if yTrue == nil || yPred == nil {
		return 0, errors.NewValueError("AUCMatrix", "nil matrix")
	}

	rTrue, cTrue := yTrue.Dims()
	rPred, cPred := yPred.Dims()

	if rTrue == 0 || cTrue == 0 || rPred == 0 || cPred == 0 {
		return 0, errors.NewValueError("AUCMatrix", "empty matrix")
	}

	if rTrue != rPred {
		return 0, errors.NewDimensionError("AUCMatrix", rTrue, rPred, 0)
	}

	// 先頭列をVecDenseに変換してAUCを計算
	yTrueVec := mat.NewVecDense(rTrue, nil)
	yPredVec := mat.NewVecDense(rPred, nil)

	for i := 0; i < rTrue; i++ {
		yTrueVec.SetVec(i, yTrue.At(i, 0))
		yPredVec.SetVec(i, yPred.At(i, 0))
	}

	return AUC(yTrueVec, yPredVec)
}

// BinaryLogLoss は二値分類の交差エントロピー損失を計算する。
// 予測値は log(0) を避けるため [ε, 1-ε] にクリップする。
func BinaryLogLoss(yTrue, yPred *mat.VecDense) (float64, error) {
	// 入力検証
	if yTrue == nil || yPred == nil {
		return 0, errors.NewValueError("BinaryLogLoss", "nil vector")
	}
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("BinaryLogLoss", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("BinaryLogLoss", n, yPred.Len(), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		label := yTrue.AtVec(i)
		if label != 0 && label != 1 {
			return 0, errors.Newf("BinaryLogLoss: labels must be 0 or 1, got %v", label)
		}

		p := errors.ClipValue(yPred.AtVec(i), logLossEpsilon, 1-logLossEpsilon)
		loss := -(label*math.Log(p) + (1-label)*math.Log(1-p))
		if err := errors.CheckScalar("BinaryLogLoss", loss, i); err != nil {
			return 0, err
		}
		sum += loss
	}

	return sum / float64(n), nil
}
