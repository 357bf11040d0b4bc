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

// Package irc defines the interfaces the contract codec uses to talk to a node.
// Package irc 定义了合约编解码器与节点交互所使用的接口。
package irc

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// CallMsg contains parameters for contract calls.
// CallMsg 包含合约调用的参数。
type CallMsg struct {
	From     common.Address  // the sender of the 'transaction' // '交易'的发送者
	To       *common.Address // the destination contract (nil for contract creation) // 目标合约（nil 表示合约创建）
	Gas      uint64          // if 0, the call executes with near-infinite gas // 如果为 0，则调用以近乎无限的 gas 执行
	GasPrice *big.Int        // wei <-> gas exchange ratio // wei <-> gas 兑换比率
	Value    *big.Int        // amount of wei sent along with the call // 随调用发送的 wei 数量
	Data     []byte          // input data, usually an ABI-encoded contract method invocation // 输入数据，通常是 ABI 编码的合约方法调用
}

// A ContractCaller provides contract calls, essentially transactions that are executed by
// the EVM but not mined into the blockchain. ContractCall is a low-level method to
// execute such calls. For applications which are structured around specific contracts,
// package bind provides a nicer way to perform calls.
// ContractCaller 提供合约调用，本质上是由 EVM 执行但未打包进区块链的交易。
// 对于围绕特定合约构建的应用程序，bind 包提供了更方便的调用方式。
type ContractCaller interface {
	CallContract(ctx context.Context, call CallMsg, blockNumber *big.Int) ([]byte, error)
}

// FilterQuery contains options for contract log filtering.
// FilterQuery 包含合约日志过滤的选项。
type FilterQuery struct {
	BlockHash *common.Hash     // used by eth_getLogs, return logs only from block with this hash // 仅返回具有此哈希的块中的日志
	FromBlock *big.Int         // beginning of the queried range, nil means genesis block // 查询范围的开始，nil 表示创世块
	ToBlock   *big.Int         // end of the range, nil means latest block // 范围的结束，nil 表示最新块
	Addresses []common.Address // restricts matches to events created by specific contracts // 限制匹配特定合约创建的事件

	// The Topic list restricts matches to particular event topics. Each event has a list
	// of topics. Topics matches a prefix of that list. An empty element slice matches any
	// topic. Non-empty elements represent an alternative that matches any of the
	// contained topics.
	//
	// Examples:
	// {} or nil          matches any topic list
	// {{A}}              matches topic A in first position
	// {{}, {B}}          matches any topic in first position AND B in second position
	// {{A}, {B}}         matches topic A in first position AND B in second position
	// Topic 列表限制匹配特定事件主题。Topics 匹配日志主题列表的前缀。
	// 空元素切片匹配任何主题，非空元素匹配其中包含的任一主题。
	Topics [][]common.Hash
}

// LogFilterer provides access to contract log events using a one-off query.
// LogFilterer 通过一次性查询提供对合约日志事件的访问。
type LogFilterer interface {
	FilterLogs(ctx context.Context, q FilterQuery) ([]types.Log, error)
}

// TransactionSender submits a call as a transaction. The node holds the sender's
// key and signs it; the returned hash identifies the pending transaction.
// TransactionSender 将调用作为交易提交。节点持有发送者的密钥并负责签名；返回的哈希标识待处理的交易。
type TransactionSender interface {
	SendTransaction(ctx context.Context, msg CallMsg) (common.Hash, error)
}

// ContractBackend is everything a contract binding needs from a node.
// ContractBackend 是合约绑定所需的全部节点能力。
type ContractBackend interface {
	ContractCaller
	TransactionSender
	LogFilterer
}
