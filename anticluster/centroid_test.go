package anticluster

import "testing"

func TestComputeCentroids(t *testing.T) {
	values := [][]float64{{0}, {2}, {10}, {20}}
	members := [][]int{{0, 1}, {2, 3}}
	centroids := computeCentroids(values, members, 1)
	if centroids[0][0] != 1 {
		t.Fatalf("expected centroid 0 = 1, got %v", centroids[0][0])
	}
	if centroids[1][0] != 15 {
		t.Fatalf("expected centroid 1 = 15, got %v", centroids[1][0])
	}
}

func TestSquaredDist(t *testing.T) {
	if got := squaredDist([]float64{0, 0}, []float64{3, 4}); got != 25 {
		t.Fatalf("expected 25, got %v", got)
	}
}

func TestUpdateCentroidOnSwap(t *testing.T) {
	// group {0,1} values {0,2}, centroid 1; swap member 1 (value 2) out for
	// a new arrival valued 10: new centroid should be (0+10)/2 = 5.
	old := []float64{1}
	got := updateCentroidOnSwap(old, []float64{2}, []float64{10}, 2)
	if got[0] != 5 {
		t.Fatalf("expected 5, got %v", got[0])
	}
}

func TestClusterVarianceSubstituted(t *testing.T) {
	values := [][]float64{{0}, {2}, {10}}
	// group {0,1} around centroid 1; substitute member 1 for member 2.
	got := clusterVarianceSubstituted(values, []int{0, 1}, 1, 2, []float64{5})
	want := (0.0-5)*(0.0-5) + (10.0-5)*(10.0-5)
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
