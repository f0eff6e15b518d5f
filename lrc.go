package edc

import "strconv"

// LRCResult is the outcome of a longitudinal redundancy check encode.
type LRCResult struct {
	Blocks []string     `json:"data_blocks" yaml:"data_blocks"`
	Policy ParityPolicy `json:"parity_type" yaml:"parity_type"`
	LRC    string       `json:"lrc" yaml:"lrc"`
	Result []string     `json:"result" yaml:"result"`
	Steps  []ParityStep `json:"steps" yaml:"steps"`
}

func (r *LRCResult) Trace() []Step { return toSteps(r.Steps) }

// LRCVerifyResult compares a received LRC row with the recomputed one.
type LRCVerifyResult struct {
	Blocks            []string     `json:"data_blocks" yaml:"data_blocks"`
	Policy            ParityPolicy `json:"parity_type" yaml:"parity_type"`
	ReceivedLRC       string       `json:"received_lrc" yaml:"received_lrc"`
	CalculatedLRC     string       `json:"calculated_lrc" yaml:"calculated_lrc"`
	IsValid           bool         `json:"is_valid" yaml:"is_valid"`
	MismatchedColumns []int        `json:"mismatched_columns" yaml:"mismatched_columns"`
	Steps             []ParityStep `json:"steps" yaml:"steps"`
}

func (r *LRCVerifyResult) Trace() []Step { return toSteps(r.Steps) }
func (r *LRCVerifyResult) Valid() bool { return r.IsValid }

// EncodeLRC computes one parity bit per column across equal-length blocks.
func EncodeLRC(blocks []string, policy ParityPolicy) (*LRCResult, error) {
	parsed, err := parseBlocks(blocks)
	if err != nil {
		return nil, err
	}

	width := len(parsed[0])
	lrc := make(Bits, width)
	steps := make([]ParityStep, 0, width)
	column := make(Bits, len(parsed))

	for i := 0; i < width; i++ {
		for j, block := range parsed {
			column[j] = block[i]
		}
		ones := column.OnesCount()
		lrc[i] = parityBit(ones, policy)
		steps = append(steps, ParityStep{
			Column:    i,
			Bits:      column.String(),
			Ones:      ones,
			ParityBit: bitString(lrc[i]),
		})
	}

	row := lrc.String()
	result := make([]string, 0, len(blocks)+1)
	result = append(result, blocks...)
	result = append(result, row)

	return &LRCResult{
		Blocks: append([]string(nil), blocks...),
		Policy: policy,
		LRC:    row,
		Result: result,
		Steps:  steps,
	}, nil
}

// VerifyLRC recomputes the LRC of blocks and compares it with receivedLRC.
func VerifyLRC(blocks []string, receivedLRC string, policy ParityPolicy) (*LRCVerifyResult, error) {
	enc, err := EncodeLRC(blocks, policy)
	if err != nil {
		return nil, err
	}
	if _, err := ParseBits("lrc", receivedLRC); err != nil {
		return nil, err
	}
	if len(receivedLRC) != len(enc.LRC) {
		return nil, invalid("lrc", receivedLRC, ErrLRCLength)
	}

	var mismatched []int
	for i := 0; i < len(receivedLRC); i++ {
		if receivedLRC[i] != enc.LRC[i] {
			mismatched = append(mismatched, i)
		}
	}

	return &LRCVerifyResult{
		Blocks:            enc.Blocks,
		Policy:            policy,
		ReceivedLRC:       receivedLRC,
		CalculatedLRC:     enc.LRC,
		IsValid:           enc.LRC == receivedLRC,
		MismatchedColumns: mismatched,
		Steps:             enc.Steps,
	}, nil
}

func parseBlocks(blocks []string) ([]Bits, error) {
	if len(blocks) == 0 {
		return nil, invalid("data_blocks", "", ErrNoBlocks)
	}
	parsed := make([]Bits, len(blocks))
	for i, s := range blocks {
		field := "data_blocks[" + strconv.Itoa(i) + "]"
		b, err := parseNonEmpty(field, s)
		if err != nil {
			return nil, err
		}
		if len(b) != len(blocks[0]) {
			return nil, invalid(field, s, ErrBlockLength)
		}
		parsed[i] = b
	}
	return parsed, nil
}
