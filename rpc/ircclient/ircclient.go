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

// Package ircclient provides a client for the node RPC API covering what the
// contract codec needs: calls, transactions and log queries.
// Package ircclient 提供节点 RPC API 的客户端，覆盖合约编解码器所需的调用、交易和日志查询。
package ircclient

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rpc"
	irc "github.com/irchain/go-irc"
	"github.com/irchain/go-irc/accounts/abi"
)

// Client defines typed wrappers for the node RPC API.
// Client 为节点 RPC API 定义了类型化的封装。
type Client struct {
	c *rpc.Client
}

// Dial connects a client to the given URL.
// Dial 将客户端连接到给定的 URL。
func Dial(rawurl string) (*Client, error) {
	return DialContext(context.Background(), rawurl)
}

// DialContext connects a client to the given URL with context.
// DialContext 使用上下文将客户端连接到给定的 URL。
func DialContext(ctx context.Context, rawurl string) (*Client, error) {
	c, err := rpc.DialContext(ctx, rawurl)
	if err != nil {
		return nil, err
	}
	return NewClient(c), nil
}

// NewClient creates a client that uses the given RPC client.
// NewClient 创建一个使用给定 RPC 客户端的客户端。
func NewClient(c *rpc.Client) *Client {
	return &Client{c}
}

// Close closes the underlying RPC connection.
// Close 关闭底层的 RPC 连接。
func (ec *Client) Close() {
	ec.c.Close()
}

// Client gets the underlying RPC client.
func (ec *Client) Client() *rpc.Client {
	return ec.c
}

// RevertError is an execution revert carrying the raw revert payload and, when
// it is a standard Error(string) payload, its reason.
// RevertError 表示执行回滚，携带原始回滚数据；如果是标准 Error(string) 数据，还带有原因字符串。
type RevertError struct {
	Reason string
	Data   hexutil.Bytes
	err    error
}

func (e *RevertError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("execution reverted: %s", e.Reason)
	}
	return e.err.Error()
}

func (e *RevertError) Unwrap() error {
	return e.err
}

// CallContract executes a message call transaction, which is directly executed in the VM
// of the node, but never mined into the blockchain.
//
// blockNumber selects the block height at which the call runs. It can be nil, in which
// case the code is taken from the latest known block. Note that state from very old
// blocks might not be available.
// CallContract 执行一个消息调用交易，该交易直接在节点的虚拟机中执行，但永远不会被打包进区块链。
// blockNumber 选择执行调用的区块高度，为 nil 时使用最新的已知区块。
func (ec *Client) CallContract(ctx context.Context, msg irc.CallMsg, blockNumber *big.Int) ([]byte, error) {
	var hex hexutil.Bytes
	err := ec.c.CallContext(ctx, &hex, "eth_call", toCallArg(msg), toBlockNumArg(blockNumber))
	if err != nil {
		return nil, revertError(err)
	}
	log.Trace("Executed contract call", "to", msg.To, "input", len(msg.Data), "output", len(hex))
	return hex, nil
}

// SendTransaction submits msg as a transaction signed by the node with the key
// of msg.From.
// SendTransaction 将 msg 作为交易提交，由节点使用 msg.From 的密钥签名。
func (ec *Client) SendTransaction(ctx context.Context, msg irc.CallMsg) (common.Hash, error) {
	var hash common.Hash
	if err := ec.c.CallContext(ctx, &hash, "eth_sendTransaction", toCallArg(msg)); err != nil {
		return common.Hash{}, revertError(err)
	}
	return hash, nil
}

// FilterLogs executes a filter query.
// FilterLogs 执行过滤查询。
func (ec *Client) FilterLogs(ctx context.Context, q irc.FilterQuery) ([]types.Log, error) {
	var result []types.Log
	arg, err := toFilterArg(q)
	if err != nil {
		return nil, err
	}
	err = ec.c.CallContext(ctx, &result, "eth_getLogs", arg)
	return result, err
}

// BlockNumber returns the most recent block number.
// BlockNumber 返回最新的区块号。
func (ec *Client) BlockNumber(ctx context.Context) (uint64, error) {
	var result hexutil.Uint64
	err := ec.c.CallContext(ctx, &result, "eth_blockNumber")
	return uint64(result), err
}

// revertError extracts the revert payload the node attaches to an execution
// error, decoding the reason of Error(string) payloads.
// revertError 提取节点附加在执行错误上的回滚数据，并解码 Error(string) 数据的原因。
func revertError(err error) error {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return err
	}
	raw, ok := dataErr.ErrorData().(string)
	if !ok {
		return err
	}
	data, decodeErr := hexutil.Decode(raw)
	if decodeErr != nil {
		return err
	}
	reason, unpackErr := abi.UnpackRevert(data)
	if unpackErr != nil {
		log.Debug("Unrecognised revert payload", "data", raw, "err", unpackErr)
	}
	return &RevertError{Reason: reason, Data: data, err: err}
}

func toBlockNumArg(number *big.Int) string {
	if number == nil {
		return "latest"
	}
	if number.Sign() >= 0 {
		return hexutil.EncodeBig(number)
	}
	// It's negative.
	// 它是负数，表示特殊的区块标签。
	if number.IsInt64() {
		return rpc.BlockNumber(number.Int64()).String()
	}
	// It's negative and large, which is invalid.
	return fmt.Sprintf("<invalid %d>", number)
}

func toCallArg(msg irc.CallMsg) interface{} {
	arg := map[string]interface{}{
		"from": msg.From,
		"to":   msg.To,
	}
	if len(msg.Data) > 0 {
		arg["input"] = hexutil.Bytes(msg.Data)
	}
	if msg.Value != nil {
		arg["value"] = (*hexutil.Big)(msg.Value)
	}
	if msg.Gas != 0 {
		arg["gas"] = hexutil.Uint64(msg.Gas)
	}
	if msg.GasPrice != nil {
		arg["gasPrice"] = (*hexutil.Big)(msg.GasPrice)
	}
	return arg
}

func toFilterArg(q irc.FilterQuery) (interface{}, error) {
	arg := map[string]interface{}{
		"address": q.Addresses,
		"topics":  q.Topics,
	}
	if q.BlockHash != nil {
		arg["blockHash"] = *q.BlockHash
		if q.FromBlock != nil || q.ToBlock != nil {
			return nil, errors.New("cannot specify both BlockHash and FromBlock/ToBlock")
		}
	} else {
		if q.FromBlock == nil {
			arg["fromBlock"] = "0x0"
		} else {
			arg["fromBlock"] = toBlockNumArg(q.FromBlock)
		}
		arg["toBlock"] = toBlockNumArg(q.ToBlock)
	}
	return arg, nil
}
