// Copyright 2025 The go-irc Authors
// This file is part of the go-irc library.
//
// The go-irc library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-irc library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-irc library. If not, see <http://www.gnu.org/licenses/>.

// 版权所有 2025 The go-irc Authors
// 此文件是 go-irc 库的一部分。
//
// go-irc 库是免费软件：您可以根据自由软件基金会发布的 GNU 宽通用公共许可证的条款重新分发和/或修改它，
// 可以是许可证的第 3 版，也可以是（由您选择）任何更高版本。
//
// go-irc 库的发布是希望它能有用，但没有任何保证；甚至没有对适销性或特定用途适用性的默示保证。
// 有关更多详细信息，请参阅 GNU 宽通用公共许可证。
//
// 您应该已经随 go-irc 库收到一份 GNU 宽通用公共许可证的副本。如果没有，请参阅 <http://www.gnu.org/licenses/>。

package abi

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

const tokenABI = `[
	{"type":"constructor","inputs":[{"name":"supply","type":"uint256"},{"name":"symbol","type":"string"}]},
	{"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"balanceOf","constant":true,"inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"balance","type":"uint256"}]},
	{"name":"totalSupply","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint"}]},
	{"type":"function","name":"approve","inputs":[{"name":"spender","type":"address"},{"name":"value","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"send","inputs":[{"name":"amount","type":"uint256"}]},
	{"type":"function","name":"send","inputs":[{"name":"amounts","type":"uint256[]"},{"name":"memo","type":"string"}]},
	{"type":"event","name":"Transfer","inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256","indexed":false}]},
	{"type":"event","name":"Approval","inputs":[{"name":"owner","type":"address","indexed":true},{"name":"spender","type":"address","indexed":true},{"name":"value","type":"uint256"}]},
	{"type":"event","name":"Memo","inputs":[{"name":"tag","type":"string","indexed":true},{"name":"","type":"string"}]},
	{"type":"event","name":"Raw","anonymous":true,"inputs":[{"name":"id","type":"uint64","indexed":true},{"name":"data","type":"bytes"}]},
	{"type":"fallback"},
	{"type":"receive","stateMutability":"payable"},
	{"type":"error","name":"Insufficient","inputs":[{"name":"have","type":"uint256"}]}
]`

var (
	alice = common.HexToAddress("0x1111111111111111111111111111111111111111")
	bob   = common.HexToAddress("0x2222222222222222222222222222222222222222")
)

func TestJSON(t *testing.T) {
	t.Parallel()
	abi, err := JSON(strings.NewReader(tokenABI))
	require.NoError(t, err)
	require.Len(t, abi.Methods, 6)
	require.Len(t, abi.Events, 4)
	require.Len(t, abi.Constructor.Inputs, 2)
	require.Equal(t, Constructor, abi.Constructor.Type)

	require.True(t, abi.Methods["balanceOf"].Constant)
	require.True(t, abi.Methods["totalSupply"].Constant)
	require.False(t, abi.Methods["transfer"].Constant)
	require.Equal(t, "totalSupply()", abi.Methods["totalSupply"].Sig)
	require.Equal(t, "uint256", abi.Methods["totalSupply"].Outputs[0].Type.String())

	// Overloads keep the first declaration under the raw name.
	require.Equal(t, "send(uint256)", abi.Methods["send"].Sig)
	require.Equal(t, "send(uint256[],string)", abi.Methods["send0"].Sig)
	require.Equal(t, "send", abi.Methods["send0"].RawName)

	require.Equal(t, "arg1", abi.Events["Memo"].Inputs[1].Name)
	require.Equal(t, "event Transfer(address indexed from, address indexed to, uint256 value)", abi.Events["Transfer"].String())
	require.Equal(t, "function balanceOf(address owner) view returns(uint256 balance)", abi.Methods["balanceOf"].String())
}

func TestJSONErrors(t *testing.T) {
	t.Parallel()
	_, err := JSON(strings.NewReader(`[{"type":"function","name":"f","inputs":[{"name":"a","type":"uint256[2][2]"}]}]`))
	require.ErrorIs(t, err, ErrTypeSyntax)

	_, err = JSON(strings.NewReader(`{"type":"function"}`))
	require.Error(t, err)
}

func TestSelectors(t *testing.T) {
	t.Parallel()
	abi := MustJSON(tokenABI)
	tests := map[string]string{
		"transfer":    "0xa9059cbb",
		"balanceOf":   "0x70a08231",
		"totalSupply": "0x18160ddd",
		"approve":     "0x095ea7b3",
	}
	for name, want := range tests {
		require.Equal(t, want, abi.Methods[name].Selector(), name)
		// Derivation is stable across calls.
		require.Equal(t, abi.Methods[name].ID, Selector(abi.Methods[name].Sig), name)
	}
	require.Equal(t, "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef", abi.Events["Transfer"].ID.Hex())
	require.Equal(t, "0x8c5be1e5ebec7d5bd14f71427d1e84f3dd0314c0f7b2291e5b200ac8c7c3b925", abi.Events["Approval"].ID.Hex())
}

func TestPackMethod(t *testing.T) {
	t.Parallel()
	abi := MustJSON(tokenABI)
	data, err := abi.Pack("transfer", bob, big.NewInt(1000))
	require.NoError(t, err)
	require.Equal(t, "0xa9059cbb"+word(strings.Repeat("22", 20))+word("03e8"), hexutil.Encode(data))

	_, err = abi.Pack("transfer", bob)
	require.ErrorIs(t, err, ErrArity)
	_, err = abi.Pack("mint", bob)
	require.ErrorIs(t, err, ErrUnknownSelector)
}

func TestPackConstructor(t *testing.T) {
	t.Parallel()
	abi := MustJSON(tokenABI)
	code := []byte{0x60, 0x80, 0x60, 0x40}
	data, err := abi.PackConstructor(code, 100, "TOK")
	require.NoError(t, err)
	require.Equal(t, code, data[:4])
	args, err := abi.Pack("", 100, "TOK")
	require.NoError(t, err)
	require.Equal(t, args, data[4:])

	values, err := abi.Constructor.Inputs.Unpack(data[4:])
	require.NoError(t, err)
	require.Equal(t, "TOK", values.Map()["symbol"])
}

func TestDecodeMethod(t *testing.T) {
	t.Parallel()
	abi := MustJSON(tokenABI)
	data, err := abi.Pack("send0", []uint64{1, 2}, "memo")
	require.NoError(t, err)

	call, err := abi.DecodeMethod(data)
	require.NoError(t, err)
	require.Equal(t, "send0", call.Name)
	require.Equal(t, "send(uint256[],string)", call.Method.Sig)
	amounts, ok := call.Params.Get("amounts")
	require.True(t, ok)
	require.Equal(t, []interface{}{big.NewInt(1), big.NewInt(2)}, amounts)
	memo, _ := call.Params.Get("memo")
	require.Equal(t, "memo", memo)
}

func TestDecodeMethodUnknownSelector(t *testing.T) {
	t.Parallel()
	abi := MustJSON(tokenABI)
	call, err := abi.DecodeMethod(hexutil.MustDecode("0xdeadbeef" + word("01")))
	require.ErrorIs(t, err, ErrUnknownSelector)
	require.Nil(t, call)

	_, err = abi.DecodeMethod([]byte{0xa9, 0x05})
	require.ErrorIs(t, err, ErrLayout)

	// Known selector, truncated arguments.
	_, err = abi.DecodeMethod(hexutil.MustDecode("0xa9059cbb" + word("01")))
	require.ErrorIs(t, err, ErrLayout)
}

func TestUnpackOutputs(t *testing.T) {
	t.Parallel()
	abi := MustJSON(tokenABI)
	values, err := abi.Unpack("balanceOf", common.Hex2Bytes(word("2a")))
	require.NoError(t, err)
	balance, ok := values.Get("balance")
	require.True(t, ok)
	require.Equal(t, big.NewInt(42), balance)

	values, err = abi.Unpack("transfer", common.Hex2Bytes(word("01")))
	require.NoError(t, err)
	require.Equal(t, true, values.Index(0))

	_, err = abi.Unpack("balanceOf", nil)
	require.ErrorIs(t, err, ErrLayout)
	_, err = abi.Unpack("nope", nil)
	require.ErrorIs(t, err, ErrUnknownSelector)
}

func transferLog(t *testing.T, abi ABI, value int64) *types.Log {
	data, err := abi.Events["Transfer"].Inputs.NonIndexed().Pack(big.NewInt(value))
	require.NoError(t, err)
	return &types.Log{
		Address: common.HexToAddress("0xc0ffee"),
		Topics:  []common.Hash{abi.Events["Transfer"].ID, common.BytesToHash(alice[:]), common.BytesToHash(bob[:])},
		Data:    data,
	}
}

func TestEventDecode(t *testing.T) {
	t.Parallel()
	abi := MustJSON(tokenABI)
	ev := abi.Events["Transfer"]
	log := transferLog(t, abi, 500)

	record, err := ev.Decode(log.Data, log.Topics)
	require.NoError(t, err)
	require.Equal(t, "Transfer", record.Name)
	require.Len(t, record.Fields, 3)
	require.Equal(t, "from", record.Fields[0].Name)
	require.Equal(t, "value", record.Fields[2].Name)

	from, _ := record.Get("from")
	to, _ := record.Get("to")
	value, _ := record.Get("value")
	require.Equal(t, alice, from)
	require.Equal(t, bob, to)
	require.Equal(t, big.NewInt(500), value)

	_, err = ev.Decode(log.Data, log.Topics[:2])
	require.ErrorIs(t, err, ErrLayout)
}

func TestEventDecodeIndexedDynamic(t *testing.T) {
	t.Parallel()
	abi := MustJSON(tokenABI)
	ev := abi.Events["Memo"]
	tagHash := common.HexToHash("0x" + strings.Repeat("ab", 32))
	data, err := ev.Inputs.NonIndexed().Pack("body")
	require.NoError(t, err)

	record, err := ev.Decode(data, []common.Hash{ev.ID, tagHash})
	require.NoError(t, err)
	tag, _ := record.Get("tag")
	require.Equal(t, tagHash, tag)
	body, _ := record.Get("arg1")
	require.Equal(t, "body", body)
}

func TestEventDecodeAnonymous(t *testing.T) {
	t.Parallel()
	abi := MustJSON(tokenABI)
	ev := abi.Events["Raw"]
	data, err := ev.Inputs.NonIndexed().Pack([]byte{0xca, 0xfe})
	require.NoError(t, err)
	topics := []common.Hash{common.BigToHash(big.NewInt(9))}

	record, err := ev.Decode(data, topics)
	require.NoError(t, err)
	id, _ := record.Get("id")
	require.Equal(t, big.NewInt(9), id)

	// Anonymous events carry no signature topic and never match a log by topic.
	record, err = ev.DecodeLogItem(&types.Log{Topics: topics, Data: data})
	require.NoError(t, err)
	require.Nil(t, record)
}

func TestDecodeLogItem(t *testing.T) {
	t.Parallel()
	abi := MustJSON(tokenABI)
	log := transferLog(t, abi, 1)

	transfer := abi.Events["Transfer"]
	record, err := transfer.DecodeLogItem(log)
	require.NoError(t, err)
	require.NotNil(t, record)
	require.Equal(t, log, record.Log)

	approval := abi.Events["Approval"]
	record, err = approval.DecodeLogItem(log)
	require.NoError(t, err)
	require.Nil(t, record)

	record, err = transfer.DecodeLogItem(&types.Log{})
	require.NoError(t, err)
	require.Nil(t, record)
}

func TestDecodeLogOverloadedEvent(t *testing.T) {
	t.Parallel()
	abi := MustJSON(`[
		{"type":"event","name":"Transfer","inputs":[{"name":"from","type":"address","indexed":true},{"name":"value","type":"uint256"}]},
		{"type":"event","name":"Transfer","inputs":[{"name":"from","type":"address","indexed":true},{"name":"id","type":"uint64"},{"name":"memo","type":"string"}]}
	]`)
	ev, ok := abi.Events["Transfer0"]
	require.True(t, ok)
	data, err := ev.Inputs.NonIndexed().Pack(uint64(3), "gm")
	require.NoError(t, err)

	record, err := abi.DecodeLog(&types.Log{Topics: []common.Hash{ev.ID, common.BytesToHash(alice[:])}, Data: data})
	require.NoError(t, err)
	require.Equal(t, "Transfer", record.Name)
	memo, _ := record.Get("memo")
	require.Equal(t, "gm", memo)
}

func TestDecodeLogs(t *testing.T) {
	t.Parallel()
	abi := MustJSON(tokenABI)
	logs := []types.Log{
		*transferLog(t, abi, 1),
		{Topics: []common.Hash{common.HexToHash("0x01")}},
		{},
		*transferLog(t, abi, 2),
	}
	records, err := abi.DecodeLogs(logs)
	require.NoError(t, err)
	require.Len(t, records, 2)
	v, _ := records[1].Get("value")
	require.Equal(t, big.NewInt(2), v)

	_, err = abi.DecodeLog(&logs[1])
	require.ErrorIs(t, err, ErrUnknownSelector)

	broken := transferLog(t, abi, 3)
	broken.Data = broken.Data[:16]
	_, err = abi.DecodeLogs([]types.Log{*broken})
	require.ErrorIs(t, err, ErrLayout)
}

func TestUnpackRevert(t *testing.T) {
	t.Parallel()
	require.Equal(t, [4]byte{0x08, 0xc3, 0x79, 0xa0}, revertError.ID)

	payload, err := revertError.Inputs.Pack("Not enough Ether provided.")
	require.NoError(t, err)
	reason, err := UnpackRevert(append(revertError.ID[:], payload...))
	require.NoError(t, err)
	require.Equal(t, "Not enough Ether provided.", reason)

	_, err = UnpackRevert([]byte{0x08, 0xc3})
	require.ErrorIs(t, err, ErrLayout)
	_, err = UnpackRevert(hexutil.MustDecode("0x4e487b71" + word("11")))
	require.ErrorIs(t, err, ErrUnknownSelector)
}
