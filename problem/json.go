package problem

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Edges travel as [u, v] pairs.
func (e Edge) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{e.U, e.V})
}

func (e *Edge) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return errors.Errorf("edge must have 2 vertices, got %d", len(pair))
	}
	e.U, e.V = pair[0], pair[1]
	return nil
}

// Decode reads a problem and checks its structure.
func Decode(r io.Reader) (*Problem, error) {
	var p Problem
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, errors.Wrap(err, "decoding problem")
	}
	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid problem")
	}
	return &p, nil
}

func Load(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening problem %s", path)
	}
	defer f.Close()
	p, err := Decode(f)
	return p, errors.Wrapf(err, "loading %s", path)
}

// DecodePose reads a pose. Poses are only checked against a problem by the
// checker.
func DecodePose(r io.Reader) (*Pose, error) {
	var pose Pose
	if err := json.NewDecoder(r).Decode(&pose); err != nil {
		return nil, errors.Wrap(err, "decoding pose")
	}
	return &pose, nil
}

func LoadPose(path string) (*Pose, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening pose %s", path)
	}
	defer f.Close()
	pose, err := DecodePose(f)
	return pose, errors.Wrapf(err, "loading %s", path)
}

func EncodePose(w io.Writer, pose *Pose) error {
	return errors.Wrap(json.NewEncoder(w).Encode(pose), "encoding pose")
}
