package control

import "testing"

func validReading(distance float64, objects ...RecognizedObject) SensorReading {
	return SensorReading{Distance: distance, Objects: objects, Valid: true}
}

func survivor() RecognizedObject {
	return RecognizedObject{ID: 7, Name: DefaultSurvivorLabel}
}

func TestBuildFrameDistances(t *testing.T) {
	obs := Observation{
		Front: validReading(0.5),
		Left:  validReading(0.6),
		Right: validReading(0.7),
	}
	f := BuildFrame(obs, NameClassifier{Label: DefaultSurvivorLabel}, DefaultConfig())

	if f.Front != 0.5 || f.Left != 0.6 || f.Right != 0.7 {
		t.Errorf("distances: got (%v, %v, %v)", f.Front, f.Left, f.Right)
	}
	if f.Tilted || f.SurvivorDetected {
		t.Error("expected no tilt and no survivor")
	}
}

func TestBuildFrameMissingSensorSentinel(t *testing.T) {
	// An absent sensor reads as NoReading and its objects are ignored.
	obs := Observation{
		Front: SensorReading{Distance: 0.1, Objects: []RecognizedObject{survivor()}},
		Left:  validReading(0.5),
		Right: validReading(0.5),
	}
	f := BuildFrame(obs, NameClassifier{Label: DefaultSurvivorLabel}, DefaultConfig())

	if f.Front != NoReading {
		t.Errorf("front: got %v, want %v", f.Front, NoReading)
	}
	if f.SurvivorDetected {
		t.Error("objects on an absent sensor must not count")
	}
}

func TestBuildFrameSurvivorWithinRange(t *testing.T) {
	obs := Observation{
		Front: validReading(0.5),
		Left:  validReading(0.2, survivor()),
		Right: validReading(0.5),
	}
	f := BuildFrame(obs, NameClassifier{Label: DefaultSurvivorLabel}, DefaultConfig())

	if !f.SurvivorDetected {
		t.Fatal("expected survivor detected at 0.2m")
	}
	if f.DetectedBy != "left" {
		t.Errorf("DetectedBy: got %q, want left", f.DetectedBy)
	}
}

func TestBuildFrameSurvivorOutOfRange(t *testing.T) {
	// Recognized but not closer than the detection range.
	obs := Observation{
		Front: validReading(0.5),
		Left:  validReading(0.4, survivor()),
		Right: validReading(0.5),
	}
	f := BuildFrame(obs, NameClassifier{Label: DefaultSurvivorLabel}, DefaultConfig())

	if f.SurvivorDetected {
		t.Error("survivor at exactly the range threshold must not count")
	}
}

func TestBuildFrameFirstMatchWins(t *testing.T) {
	obs := Observation{
		Front: validReading(0.3, survivor()),
		Left:  validReading(0.1, survivor()),
		Right: validReading(0.5),
	}
	f := BuildFrame(obs, NameClassifier{Label: DefaultSurvivorLabel}, DefaultConfig())

	if !f.SurvivorDetected {
		t.Fatal("expected survivor detected")
	}
	// Front is scanned first; the closer left candidate is never ranked.
	if f.DetectedBy != "front" {
		t.Errorf("DetectedBy: got %q, want front", f.DetectedBy)
	}
}

func TestBuildFrameNonSurvivorObjects(t *testing.T) {
	obs := Observation{
		Front: validReading(0.2, RecognizedObject{ID: 3, Name: "Rock"}, RecognizedObject{ID: 4}),
		Left:  validReading(0.5),
		Right: validReading(0.5),
	}
	f := BuildFrame(obs, NameClassifier{Label: DefaultSurvivorLabel}, DefaultConfig())

	if f.SurvivorDetected {
		t.Error("non-survivor objects must not count")
	}
}

func TestBuildFrameTilt(t *testing.T) {
	tests := []struct {
		name  string
		accel [3]float64
		valid bool
		want  bool
	}{
		{"level", [3]float64{0.1, 0.1, 9.8}, true, false},
		{"x tilt", [3]float64{4.0, 0, 9.8}, true, true},
		{"y tilt", [3]float64{0, -4.0, 9.8}, true, true},
		{"at threshold", [3]float64{3.5, 3.5, 9.8}, true, false},
		{"z ignored", [3]float64{0, 0, 99}, true, false},
		{"no accelerometer", [3]float64{9, 9, 9}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := Observation{
				Front: validReading(0.5),
				Left:  validReading(0.5),
				Right: validReading(0.5),
				Accel: tt.accel,
			}
			obs.AccelValid = tt.valid
			f := BuildFrame(obs, nil, DefaultConfig())
			if f.Tilted != tt.want {
				t.Errorf("tilted: got %v, want %v", f.Tilted, tt.want)
			}
		})
	}
}
