// SPDX-License-Identifier: EPL-2.0

package feature

import "math"

func hammingWindow(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return w
}

func hzToMel(hz float64) float64 { return 2595 * math.Log10(1+hz/700) }

func melToHz(mel float64) float64 { return 700 * (math.Pow(10, mel/2595) - 1) }

// melBank returns numMels triangular filters over the fftSize/2+1 power
// bins, equally spaced on the mel scale between low and high Hz.
func melBank(numMels, fftSize, sampleRate int, low, high float64) [][]float64 {
	bins := fftSize/2 + 1
	lowMel, highMel := hzToMel(low), hzToMel(high)
	step := (highMel - lowMel) / float64(numMels+1)

	edges := make([]int, numMels+2)
	for i := range edges {
		hz := melToHz(lowMel + float64(i)*step)
		edges[i] = min(int(math.Round(hz*float64(fftSize)/float64(sampleRate))), bins-1)
	}
	// every filter spans at least one bin
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			edges[i] = edges[i-1] + 1
		}
	}

	bank := make([][]float64, numMels)
	for m := range bank {
		left, center, right := edges[m], edges[m+1], edges[m+2]
		filter := make([]float64, bins)
		for k := left; k < center && k < bins; k++ {
			filter[k] = float64(k-left) / float64(center-left)
		}
		for k := center; k <= right && k < bins; k++ {
			filter[k] = float64(right-k) / float64(right-center)
		}
		bank[m] = filter
	}
	return bank
}
