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
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

const vaultABI = `[
	{"type":"function","name":"deposit","inputs":[{"name":"amount","type":"uint256"}]},
	{"type":"function","name":"transfer","inputs":[{"name":"dst","type":"address"},{"name":"wad","type":"uint256"}]},
	{"type":"event","name":"Deposit","inputs":[{"name":"who","type":"address","indexed":true},{"name":"amount","type":"uint256"}]},
	{"type":"event","name":"Transfer","inputs":[{"name":"src","type":"address","indexed":true},{"name":"dst","type":"address","indexed":true},{"name":"wad","type":"uint256"}]}
]`

func TestRegistryLookup(t *testing.T) {
	t.Parallel()
	token, vault := MustJSON(tokenABI), MustJSON(vaultABI)
	vaultAddr := common.HexToAddress("0xbeef")

	reg := NewRegistry()
	require.NoError(t, reg.Register("token", common.Address{}, &token))
	require.NoError(t, reg.Register("vault", vaultAddr, &vault))

	// Shared selectors stay with the first registration.
	method, err := reg.MethodByID(common.FromHex("0xa9059cbb"))
	require.NoError(t, err)
	require.Equal(t, "to", method.Inputs[0].Name)

	data, err := vault.Pack("deposit", 7)
	require.NoError(t, err)
	call, err := reg.DecodeMethod(data)
	require.NoError(t, err)
	require.Equal(t, "deposit", call.Name)

	_, err = reg.DecodeMethod(common.FromHex("0x00000000"))
	require.ErrorIs(t, err, ErrUnknownSelector)

	// A log emitted at the vault address decodes with the vault names.
	log := transferLog(t, token, 5)
	log.Address = vaultAddr
	record, err := reg.DecodeLog(log)
	require.NoError(t, err)
	_, ok := record.Get("src")
	require.True(t, ok)

	// Elsewhere the shared topic resolves to the first registration.
	log.Address = common.HexToAddress("0x01")
	record, err = reg.DecodeLog(log)
	require.NoError(t, err)
	_, ok = record.Get("from")
	require.True(t, ok)

	_, err = reg.DecodeLog(&types.Log{Topics: []common.Hash{{}}})
	require.ErrorIs(t, err, ErrUnknownSelector)

	entries := reg.Contracts()
	require.Len(t, entries, 2)
	require.Equal(t, "token", entries[0].Name)
	require.Equal(t, "vault", entries[1].Name)
}

func TestRegistryReplaceAndUnregister(t *testing.T) {
	t.Parallel()
	token, vault := MustJSON(tokenABI), MustJSON(vaultABI)
	reg := NewRegistry()
	require.NoError(t, reg.Register("a", common.Address{}, &token))
	require.NoError(t, reg.Register("a", common.Address{}, &vault))

	_, err := reg.MethodByID(common.FromHex("0x70a08231")) // balanceOf
	require.ErrorIs(t, err, ErrUnknownSelector)
	entry, ok := reg.Contract("a")
	require.True(t, ok)
	require.Same(t, &vault, entry.ABI)

	require.True(t, reg.Unregister("a"))
	require.False(t, reg.Unregister("a"))
	_, ok = reg.Contract("a")
	require.False(t, ok)
	require.Empty(t, reg.Contracts())

	require.ErrorIs(t, reg.Register("", common.Address{}, &token), ErrInvalidValue)
	require.ErrorIs(t, reg.Register("x", common.Address{}, nil), ErrInvalidValue)
}

func TestRegistrySnapshotIsolation(t *testing.T) {
	t.Parallel()
	token := MustJSON(tokenABI)
	reg := NewRegistry()
	require.NoError(t, reg.Register("token", common.Address{}, &token))

	before := reg.table.Load()
	vault := MustJSON(vaultABI)
	require.NoError(t, reg.Register("vault", common.Address{}, &vault))

	// The table held by an earlier reader is never mutated.
	require.Len(t, before.entries, 1)
	_, ok := before.methods[Selector("deposit(uint256)")]
	require.False(t, ok)
	_, ok = reg.table.Load().methods[Selector("deposit(uint256)")]
	require.True(t, ok)
}

func TestRegistryConcurrentReads(t *testing.T) {
	t.Parallel()
	token := MustJSON(tokenABI)
	reg := NewRegistry()
	require.NoError(t, reg.Register("token", common.Address{}, &token))
	data, err := token.Pack("transfer", bob, big.NewInt(1))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if _, err := reg.DecodeMethod(data); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	for i := 0; i < 20; i++ {
		vault := MustJSON(vaultABI)
		require.NoError(t, reg.Register("vault", common.Address{}, &vault))
	}
	wg.Wait()
}

func TestRegistrySubscribe(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()
	events := make(chan RegistryEvent, 2)
	sub := reg.Subscribe(events)
	defer sub.Unsubscribe()

	token := MustJSON(tokenABI)
	require.NoError(t, reg.Register("token", common.Address{}, &token))
	reg.Unregister("token")

	for _, want := range []RegistryEvent{{"token", ContractRegistered}, {"token", ContractUnregistered}} {
		select {
		case ev := <-events:
			require.Equal(t, want, ev)
		case <-time.After(time.Second):
			t.Fatalf("missing registry event %v", want)
		}
	}
}

const nftABI = `[
	{"type":"event","name":"Transfer","inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"tokenId","type":"uint256","indexed":true}]},
	{"type":"event","name":"Mint","inputs":[{"name":"to","type":"address","indexed":true}]}
]`

func TestRegistryDecodeLogBoundError(t *testing.T) {
	t.Parallel()
	token, nft := MustJSON(tokenABI), MustJSON(nftABI)
	nftAddr := common.HexToAddress("0xbeef")

	reg := NewRegistry()
	require.NoError(t, reg.Register("token", common.Address{}, &token))
	require.NoError(t, reg.Register("nft", nftAddr, &nft))

	// A token shaped Transfer log at the nft address is malformed for the nft
	// interface and must not be decoded with the token's event instead.
	log := transferLog(t, token, 5)
	log.Address = nftAddr
	record, err := reg.DecodeLog(log)
	require.ErrorIs(t, err, ErrLayout)
	require.Nil(t, record)

	// Events the bound interface does not know still resolve by topic.
	approval := token.Events["Approval"]
	data, err := approval.Inputs.NonIndexed().Pack(big.NewInt(9))
	require.NoError(t, err)
	record, err = reg.DecodeLog(&types.Log{
		Address: nftAddr,
		Topics:  []common.Hash{approval.ID, common.BytesToHash(alice[:]), common.BytesToHash(bob[:])},
		Data:    data,
	})
	require.NoError(t, err)
	require.Equal(t, "Approval", record.Name)
}

func TestRegistryReplaceKeepsPrecedence(t *testing.T) {
	t.Parallel()
	token, vault := MustJSON(tokenABI), MustJSON(vaultABI)
	reg := NewRegistry()
	require.NoError(t, reg.Register("token", common.Address{}, &token))
	require.NoError(t, reg.Register("vault", common.Address{}, &vault))

	// Replacing the first registration keeps its hold on the shared selector.
	replacement := MustJSON(tokenABI)
	require.NoError(t, reg.Register("token", common.Address{}, &replacement))

	method, err := reg.MethodByID(common.FromHex("0xa9059cbb"))
	require.NoError(t, err)
	require.Equal(t, "to", method.Inputs[0].Name)

	entries := reg.Contracts()
	require.Len(t, entries, 2)
	require.Equal(t, "token", entries[0].Name)
	require.Same(t, &replacement, entries[0].ABI)
}
