package edc

// VRCResult is the outcome of a vertical redundancy check encode.
type VRCResult struct {
	Data      string       `json:"data" yaml:"data"`
	Policy    ParityPolicy `json:"parity_type" yaml:"parity_type"`
	Ones      int          `json:"ones" yaml:"ones"`
	ParityBit string       `json:"parity_bit" yaml:"parity_bit"`
	Result    string       `json:"result" yaml:"result"`
	Steps     []ParityStep `json:"steps" yaml:"steps"`
}

func (r *VRCResult) Trace() []Step { return toSteps(r.Steps) }

// VRCVerifyResult is the outcome of checking a received VRC codeword.
type VRCVerifyResult struct {
	Codeword         string       `json:"codeword" yaml:"codeword"`
	Policy           ParityPolicy `json:"parity_type" yaml:"parity_type"`
	ReceivedParity   string       `json:"received_parity" yaml:"received_parity"`
	CalculatedParity string       `json:"calculated_parity" yaml:"calculated_parity"`
	IsValid          bool         `json:"is_valid" yaml:"is_valid"`
	Steps            []ParityStep `json:"steps" yaml:"steps"`
}

func (r *VRCVerifyResult) Trace() []Step { return toSteps(r.Steps) }
func (r *VRCVerifyResult) Valid() bool { return r.IsValid }

// EncodeVRC appends a single parity bit to data so that the total number of
// ones satisfies policy.
func EncodeVRC(data string, policy ParityPolicy) (*VRCResult, error) {
	b, err := parseNonEmpty("data", data)
	if err != nil {
		return nil, err
	}

	ones := b.OnesCount()
	bit := bitString(parityBit(ones, policy))

	return &VRCResult{
		Data:      data,
		Policy:    policy,
		Ones:      ones,
		ParityBit: bit,
		Result:    data + bit,
		Steps: []ParityStep{
			{Column: -1, Bits: data, Ones: ones, ParityBit: bit},
		},
	}, nil
}

// VerifyVRC re-derives the parity of everything but the last bit of codeword
// and compares it with the received parity bit.
func VerifyVRC(codeword string, policy ParityPolicy) (*VRCVerifyResult, error) {
	if len(codeword) < 2 {
		return nil, invalid("codeword", codeword, ErrEmpty)
	}
	if _, err := ParseBits("codeword", codeword); err != nil {
		return nil, err
	}

	enc, err := EncodeVRC(codeword[:len(codeword)-1], policy)
	if err != nil {
		return nil, err
	}
	received := codeword[len(codeword)-1:]

	return &VRCVerifyResult{
		Codeword:         codeword,
		Policy:           policy,
		ReceivedParity:   received,
		CalculatedParity: enc.ParityBit,
		IsValid:          received == enc.ParityBit,
		Steps:            enc.Steps,
	}, nil
}
