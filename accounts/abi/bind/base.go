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

// Package bind binds a contract interface to an address and a node backend.
// Package bind 将合约接口绑定到一个地址和节点后端。
package bind

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
	irc "github.com/irchain/go-irc"
	"github.com/irchain/go-irc/accounts/abi"
)

// ErrNoCode is returned by call and transact operations for which the requested
// recipient contract to operate on does not exist in the state db or does not
// have any code associated with it (i.e. self-destructed).
// ErrNoCode 表示调用的目标合约不存在或没有代码。
var ErrNoCode = errors.New("no contract code at given address")

// CallOpts is the collection of options to fine tune a contract call request.
// CallOpts 是用于微调合约调用请求的选项集合。
type CallOpts struct {
	From        common.Address  // Optional the sender address, otherwise the first account is used // 可选的发送者地址
	BlockNumber *big.Int        // Optional the block number on which the call should be performed // 可选的执行调用的区块号
	Context     context.Context // Network context to support cancellation and timeouts (nil = no timeout) // 支持取消和超时的上下文
}

// TransactOpts is the collection of options to create a transaction. The node
// signs with the key of From.
// TransactOpts 是创建交易所需的选项集合。节点使用 From 的密钥签名。
type TransactOpts struct {
	From     common.Address // Account to send the transaction from // 发送交易的账户
	Value    *big.Int       // Funds to transfer along the transaction (nil = 0 = no funds) // 随交易转移的资金
	GasPrice *big.Int       // Gas price to use for the transaction execution (nil = gas price oracle) // 交易执行使用的 gas 价格
	GasLimit uint64         // Gas limit to set for the transaction execution (0 = estimate) // 交易执行的 gas 上限

	Context context.Context // Network context to support cancellation and timeouts (nil = no timeout) // 支持取消和超时的上下文
}

// FilterOpts is the collection of options to fine tune filtering for events
// within a bound contract.
// FilterOpts 是用于微调绑定合约内事件过滤的选项集合。
type FilterOpts struct {
	Start uint64  // Start of the queried range // 查询范围的开始
	End   *uint64 // End of the range (nil = latest) // 范围的结束（nil 表示最新）

	Context context.Context // Network context to support cancellation and timeouts (nil = no timeout) // 支持取消和超时的上下文
}

// Contract is the base wrapper object that reflects a contract on the
// chain. It contains a collection of methods that are used by the
// higher level contract bindings to operate.
// Contract 是反映链上合约的基础包装对象，包含高层合约绑定所使用的方法集合。
type Contract struct {
	address common.Address      // Deployment address of the contract on the chain // 合约在链上的部署地址
	abi     abi.ABI             // Reflect based ABI to access the correct methods // 用于访问正确方法的 ABI
	backend irc.ContractBackend // Node the contract is reached through // 访问合约所通过的节点
}

// NewContract creates a low level contract interface through which calls and
// transactions may be made through.
// NewContract 创建一个底层合约接口，通过它可以进行调用和交易。
func NewContract(address common.Address, abi abi.ABI, backend irc.ContractBackend) *Contract {
	return &Contract{
		address: address,
		abi:     abi,
		backend: backend,
	}
}

// Address returns the deployment address of the contract.
func (c *Contract) Address() common.Address {
	return c.address
}

// ABI returns the interface the contract was bound with.
func (c *Contract) ABI() *abi.ABI {
	return &c.abi
}

// DeployContract deploys a contract onto the chain and binds the deployment
// address to a Go wrapper once it is known. The returned hash identifies the
// creation transaction.
// DeployContract 将合约部署到链上，返回创建交易的哈希。
func DeployContract(opts *TransactOpts, contract abi.ABI, bytecode []byte, backend irc.TransactionSender, params ...interface{}) (common.Hash, error) {
	input, err := contract.PackConstructor(bytecode, params...)
	if err != nil {
		return common.Hash{}, err
	}
	hash, err := backend.SendTransaction(ensureContext(opts.Context), irc.CallMsg{
		From:     opts.From,
		Gas:      opts.GasLimit,
		GasPrice: opts.GasPrice,
		Value:    opts.Value,
		Data:     input,
	})
	if err != nil {
		return common.Hash{}, err
	}
	log.Info("Submitted contract creation", "from", opts.From, "hash", hash, "size", len(input))
	return hash, nil
}

// Call invokes the (constant) contract method with params as input values and
// returns the decoded outputs.
// Call 以 params 作为输入值调用（常量）合约方法，并返回解码后的输出。
func (c *Contract) Call(opts *CallOpts, method string, params ...interface{}) (abi.Values, error) {
	if opts == nil {
		opts = new(CallOpts)
	}
	input, err := c.abi.Pack(method, params...)
	if err != nil {
		return nil, err
	}
	msg := irc.CallMsg{From: opts.From, To: &c.address, Data: input}
	output, err := c.backend.CallContract(ensureContext(opts.Context), msg, opts.BlockNumber)
	if err != nil {
		return nil, err
	}
	if len(output) == 0 && len(c.abi.Methods[method].Outputs) > 0 {
		// Make sure we have a contract to operate on, and bail out otherwise.
		// 确保有可操作的合约，否则退出。
		return nil, ErrNoCode
	}
	log.Trace("Contract call", "address", c.address, "method", method, "output", len(output))
	return c.abi.Unpack(method, output)
}

// Transact invokes the (paid) contract method with params as input values.
// Transact 以 params 作为输入值调用（付费）合约方法。
func (c *Contract) Transact(opts *TransactOpts, method string, params ...interface{}) (common.Hash, error) {
	input, err := c.abi.Pack(method, params...)
	if err != nil {
		return common.Hash{}, err
	}
	if m := c.abi.Methods[method]; m.Constant {
		log.Warn("Sending transaction to constant method", "address", c.address, "method", m.Sig)
	}
	return c.transact(opts, input)
}

// RawTransact initiates a transaction with the given raw calldata as the input.
// It's usually used to initiate transactions for invoking **Fallback** function.
// RawTransact 使用给定的原始调用数据发起交易。
func (c *Contract) RawTransact(opts *TransactOpts, calldata []byte) (common.Hash, error) {
	return c.transact(opts, calldata)
}

func (c *Contract) transact(opts *TransactOpts, input []byte) (common.Hash, error) {
	hash, err := c.backend.SendTransaction(ensureContext(opts.Context), irc.CallMsg{
		From:     opts.From,
		To:       &c.address,
		Gas:      opts.GasLimit,
		GasPrice: opts.GasPrice,
		Value:    opts.Value,
		Data:     input,
	})
	if err != nil {
		return common.Hash{}, err
	}
	log.Debug("Submitted contract transaction", "address", c.address, "hash", hash)
	return hash, nil
}

// FilterLogs queries the logs of the named event emitted by the contract and
// decodes them. Each query rule lists the accepted values of one indexed input.
// FilterLogs 查询合约产生的指定事件日志并解码。每条查询规则列出一个索引参数可接受的值。
func (c *Contract) FilterLogs(opts *FilterOpts, name string, query ...[]interface{}) ([]*abi.EventRecord, error) {
	if opts == nil {
		opts = new(FilterOpts)
	}
	event, ok := c.abi.Events[name]
	if !ok {
		return nil, fmt.Errorf("%w: event '%s' not found", abi.ErrUnknownSelector, name)
	}
	topics, err := event.FilterTopics(query...)
	if err != nil {
		return nil, err
	}
	config := irc.FilterQuery{
		Addresses: []common.Address{c.address},
		Topics:    topics,
		FromBlock: new(big.Int).SetUint64(opts.Start),
	}
	if opts.End != nil {
		config.ToBlock = new(big.Int).SetUint64(*opts.End)
	}
	logs, err := c.backend.FilterLogs(ensureContext(opts.Context), config)
	if err != nil {
		return nil, err
	}
	records := make([]*abi.EventRecord, 0, len(logs))
	for i := range logs {
		record, err := c.decodeLog(&event, &logs[i])
		if err != nil {
			return nil, err
		}
		if record != nil {
			records = append(records, record)
		}
	}
	log.Debug("Filtered contract logs", "address", c.address, "event", name, "logs", len(logs), "decoded", len(records))
	return records, nil
}

// decodeLog decodes a filtered log. Anonymous events have no ID topic to check
// against and are decoded directly.
func (c *Contract) decodeLog(event *abi.Event, l *types.Log) (*abi.EventRecord, error) {
	if event.Anonymous {
		record, err := event.Decode(l.Data, l.Topics)
		if err != nil {
			return nil, err
		}
		record.Log = l
		return record, nil
	}
	return event.DecodeLogItem(l)
}

// ensureContext is a helper method to ensure a context is not nil, even if the
// user specified it as such.
// ensureContext 是一个辅助方法，确保上下文不为 nil。
func ensureContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
