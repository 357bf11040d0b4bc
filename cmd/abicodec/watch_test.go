// Copyright 2025 The go-irc Authors
// This file is part of go-irc.
//
// go-irc is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-irc is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-irc. If not, see <http://www.gnu.org/licenses/>.

// 版权所有 2025 The go-irc Authors
// 此文件是 go-irc 的一部分。
//
// go-irc 是免费软件：您可以根据自由软件基金会发布的 GNU 通用公共许可证的条款重新分发和/或修改它，
// 可以是许可证的第 3 版，也可以是（由您选择）任何更高版本。
//
// go-irc 的发布是希望它能有用，但没有任何保证；甚至没有对适销性或特定用途适用性的默示保证。
// 有关更多详细信息，请参阅 GNU 通用公共许可证。
//
// 您应该已经随 go-irc 收到一份 GNU 通用公共许可证的副本。如果没有，请参阅 <http://www.gnu.org/licenses/>。

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/irchain/go-irc/accounts/abi"
	"github.com/stretchr/testify/require"
)

const depositABI = `[
	{"type":"function","name":"deposit","inputs":[{"name":"amount","type":"uint256"}]}
]`

func TestContractWatcherReload(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "token.json", erc20ABI)
	contracts := []ContractConfig{{Name: "token", ABI: path}}
	reg, err := makeRegistry(codecConfig{Contracts: contracts})
	require.NoError(t, err)

	cw, err := newContractWatcher(reg, contracts)
	require.NoError(t, err)
	defer cw.Close()

	deposit := abi.Selector("deposit(uint256)")
	_, err = reg.MethodByID(deposit[:])
	require.ErrorIs(t, err, abi.ErrUnknownSelector)

	require.NoError(t, os.WriteFile(path, []byte(depositABI), 0644))
	require.Eventually(t, func() bool {
		_, err := reg.MethodByID(deposit[:])
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)

	// Unrelated files in the directory are ignored.
	writeFile(t, dir, "notes.txt", "hello")
	entries := reg.Contracts()
	require.Len(t, entries, 1)
}

func TestContractWatcherKeepsOnBadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "token.json", erc20ABI)
	contracts := []ContractConfig{{Name: "token", ABI: path}}
	reg, err := makeRegistry(codecConfig{Contracts: contracts})
	require.NoError(t, err)
	cw := &contractWatcher{reg: reg}

	require.NoError(t, os.WriteFile(path, []byte(`[{"type":"function","name":`), 0644))
	cw.reload(contracts[0])

	transfer := abi.Selector("transfer(address,uint256)")
	_, err = reg.MethodByID(transfer[:])
	require.NoError(t, err)
}

func TestWatchCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "erc20.json", erc20ABI)
	config := writeFile(t, dir, "config.toml", "[[Contracts]]\nName = \"token\"\nABI = \"erc20.json\"\n")

	from := common.HexToHash("0x1111111111111111111111111111111111111111")
	to := common.HexToHash(bob)
	logJSON := fmt.Sprintf(`{"topics":["%s","%s","%s"],"data":"0x%064x"}`,
		"0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef", from.Hex(), to.Hex(), 77)

	var out bytes.Buffer
	app := newApp()
	app.Reader = strings.NewReader(logJSON + "\n\nnot a log\n" + logJSON + "\n")
	app.Writer = &out
	app.ErrWriter = &out
	require.NoError(t, app.Run([]string{"abicodec", "--verbosity", "0", "--config", config, "watch"}))
	require.Equal(t, 2, strings.Count(out.String(), `"event": "Transfer"`))
	require.Contains(t, out.String(), "77")

	_, err := run(t, "watch")
	require.Error(t, err)
	_, err = run(t, "--config", filepath.Join(dir, "missing.toml"), "watch")
	require.Error(t, err)
}
