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

package bind

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	irc "github.com/irchain/go-irc"
	"github.com/irchain/go-irc/accounts/abi"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const counterABI = `[
	{"type":"constructor","inputs":[{"name":"start","type":"uint256"}]},
	{"type":"function","name":"get","stateMutability":"view","inputs":[],"outputs":[{"name":"count","type":"uint256"}]},
	{"type":"function","name":"add","inputs":[{"name":"delta","type":"int64"}]},
	{"type":"event","name":"Added","inputs":[{"name":"by","type":"address","indexed":true},{"name":"delta","type":"int64"}]},
	{"type":"event","name":"Tick","anonymous":true,"inputs":[{"name":"n","type":"uint8","indexed":true}]}
]`

// mockBackend records every request and answers from canned data.
type mockBackend struct {
	mu     sync.Mutex
	calls  []irc.CallMsg
	sent   []irc.CallMsg
	query  irc.FilterQuery
	output []byte
	logs   []types.Log
	err    error
}

func (mb *mockBackend) CallContract(ctx context.Context, call irc.CallMsg, blockNumber *big.Int) ([]byte, error) {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	mb.calls = append(mb.calls, call)
	return mb.output, mb.err
}

func (mb *mockBackend) SendTransaction(ctx context.Context, msg irc.CallMsg) (common.Hash, error) {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	mb.sent = append(mb.sent, msg)
	return common.HexToHash("0x1234"), mb.err
}

func (mb *mockBackend) FilterLogs(ctx context.Context, q irc.FilterQuery) ([]types.Log, error) {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	mb.query = q
	return mb.logs, mb.err
}

var (
	counterAddr = common.HexToAddress("0xc0c0")
	sender      = common.HexToAddress("0x5e5e")
)

func newCounter(t *testing.T, backend *mockBackend) *Contract {
	parsed, err := abi.JSON(strings.NewReader(counterABI))
	require.NoError(t, err)
	return NewContract(counterAddr, parsed, backend)
}

func TestCall(t *testing.T) {
	t.Parallel()
	backend := &mockBackend{output: common.LeftPadBytes([]byte{0x2a}, 32)}
	c := newCounter(t, backend)

	values, err := c.Call(&CallOpts{From: sender}, "get")
	require.NoError(t, err)
	count, ok := values.Get("count")
	require.True(t, ok)
	require.Equal(t, big.NewInt(42), count)

	require.Len(t, backend.calls, 1)
	require.Equal(t, sender, backend.calls[0].From)
	require.Equal(t, counterAddr, *backend.calls[0].To)
	id := c.ABI().Methods["get"].ID
	require.Equal(t, id[:], backend.calls[0].Data)
}

func TestCallNoCode(t *testing.T) {
	t.Parallel()
	c := newCounter(t, &mockBackend{})
	_, err := c.Call(nil, "get")
	require.ErrorIs(t, err, ErrNoCode)
}

func TestCallErrors(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	c := newCounter(t, &mockBackend{err: boom})
	_, err := c.Call(nil, "get")
	require.ErrorIs(t, err, boom)

	_, err = c.Call(nil, "missing")
	require.ErrorIs(t, err, abi.ErrUnknownSelector)

	_, err = c.Call(nil, "get", 1)
	require.ErrorIs(t, err, abi.ErrArity)
}

func TestTransact(t *testing.T) {
	t.Parallel()
	backend := new(mockBackend)
	c := newCounter(t, backend)

	hash, err := c.Transact(&TransactOpts{From: sender, Value: big.NewInt(1)}, "add", -3)
	require.NoError(t, err)
	require.Equal(t, common.HexToHash("0x1234"), hash)
	require.Len(t, backend.sent, 1)

	msg := backend.sent[0]
	require.Equal(t, counterAddr, *msg.To)
	require.Equal(t, big.NewInt(1), msg.Value)
	want, err := c.ABI().Pack("add", -3)
	require.NoError(t, err)
	require.Equal(t, want, msg.Data)
}

func TestRawTransact(t *testing.T) {
	t.Parallel()
	backend := new(mockBackend)
	c := newCounter(t, backend)

	calldata := common.FromHex("0xdeadbeef")
	hash, err := c.RawTransact(&TransactOpts{From: sender, GasLimit: 21000}, calldata)
	require.NoError(t, err)
	require.Equal(t, common.HexToHash("0x1234"), hash)
	require.Len(t, backend.sent, 1)
	require.Equal(t, calldata, backend.sent[0].Data)
	require.Equal(t, uint64(21000), backend.sent[0].Gas)
	require.Equal(t, counterAddr, *backend.sent[0].To)

	boom := errors.New("boom")
	_, err = newCounter(t, &mockBackend{err: boom}).RawTransact(&TransactOpts{}, calldata)
	require.ErrorIs(t, err, boom)
}

func TestDeployContract(t *testing.T) {
	t.Parallel()
	backend := new(mockBackend)
	parsed, err := abi.JSON(strings.NewReader(counterABI))
	require.NoError(t, err)

	code := common.FromHex("0x6080604052")
	_, err = DeployContract(&TransactOpts{From: sender}, parsed, code, backend, 7)
	require.NoError(t, err)
	require.Len(t, backend.sent, 1)
	require.Nil(t, backend.sent[0].To)
	require.Equal(t, code, backend.sent[0].Data[:len(code)])
	require.Len(t, backend.sent[0].Data, len(code)+32)

	_, err = DeployContract(&TransactOpts{}, parsed, code, backend)
	require.ErrorIs(t, err, abi.ErrArity)
}

func TestFilterLogs(t *testing.T) {
	t.Parallel()
	backend := new(mockBackend)
	c := newCounter(t, backend)
	added := c.ABI().Events["Added"]

	data, err := added.Inputs.NonIndexed().Pack(-5)
	require.NoError(t, err)
	backend.logs = []types.Log{
		{Address: counterAddr, Topics: []common.Hash{added.ID, common.BytesToHash(sender[:])}, Data: data},
		{Address: counterAddr, Topics: []common.Hash{common.HexToHash("0x01")}},
	}
	end := uint64(100)
	records, err := c.FilterLogs(&FilterOpts{Start: 10, End: &end}, "Added", []interface{}{sender})
	require.NoError(t, err)
	require.Len(t, records, 1)

	by, _ := records[0].Get("by")
	require.Equal(t, sender, by)
	delta, _ := records[0].Get("delta")
	require.Equal(t, big.NewInt(-5), delta)

	require.Equal(t, []common.Address{counterAddr}, backend.query.Addresses)
	require.Equal(t, uint64(10), backend.query.FromBlock.Uint64())
	require.Equal(t, uint64(100), backend.query.ToBlock.Uint64())
	require.Equal(t, [][]common.Hash{{added.ID}, {common.BytesToHash(sender[:])}}, backend.query.Topics)

	_, err = c.FilterLogs(nil, "Removed")
	require.ErrorIs(t, err, abi.ErrUnknownSelector)
}

func TestFilterLogsAnonymous(t *testing.T) {
	t.Parallel()
	backend := new(mockBackend)
	c := newCounter(t, backend)
	backend.logs = []types.Log{{Address: counterAddr, Topics: []common.Hash{common.BigToHash(big.NewInt(3))}}}

	records, err := c.FilterLogs(nil, "Tick")
	require.NoError(t, err)
	require.Len(t, records, 1)
	n, _ := records[0].Get("n")
	require.Equal(t, big.NewInt(3), n)
	require.Nil(t, backend.query.ToBlock)
	require.Empty(t, backend.query.Topics)
}
