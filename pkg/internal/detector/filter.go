package detector

import "github.com/mjibson/go-dsp/fft"

// bandpass keeps only spectral content between lowHz and highHz, inclusive.
// Implemented as an FFT brick-wall filter; adequate for isolating the cardiac
// band ahead of thresholding, where phase distortion is not a concern.
func bandpass(signal []float64, samplingRate, lowHz, highHz float64) []float64 {
	n := len(signal)
	if n == 0 {
		return nil
	}

	spectrum := fft.FFTReal(signal)
	binWidth := samplingRate / float64(n)
	for k := range spectrum {
		// Mirror the negative-frequency half onto positive frequencies.
		bin := k
		if bin > n/2 {
			bin = n - k
		}
		freq := float64(bin) * binWidth
		if freq < lowHz || freq > highHz {
			spectrum[k] = 0
		}
	}

	inverse := fft.IFFT(spectrum)
	out := make([]float64, n)
	for i, c := range inverse {
		out[i] = real(c)
	}
	return out
}
