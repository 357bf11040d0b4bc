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
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
)

// Error represents a revert payload layout: a 4-byte identifier followed by the
// encoded inputs.
// Error 结构体表示回滚数据的布局：4 字节的标识符后跟编码后的参数。
type Error struct {
	Name   string
	Inputs Arguments
	str    string // 缓存的字符串表示形式

	// Sig 包含规范的字符串签名，例如 "Error(string)"。
	Sig string

	// ID 是签名 Keccak256 哈希的前 4 个字节。
	ID [4]byte
}

// NewError 创建一个新的 Error 对象，并预先计算其签名和 ID。
func NewError(name string, inputs Arguments) Error {
	sig := signature(name, inputs)
	var id [4]byte
	copy(id[:], crypto.Keccak256([]byte(sig))[:4])
	return Error{
		Name:   name,
		Inputs: inputs,
		str:    fmt.Sprintf("error %v(%v)", name, describe(inputs)),
		Sig:    sig,
		ID:     id,
	}
}

// String 返回错误的字符串表示形式。
func (e Error) String() string {
	return e.str
}

// Unpack 将给定的数据解包为合适的值。
// 它首先检查 4 字节的错误 ID，然后解包参数。
func (e *Error) Unpack(data []byte) (Values, error) {
	if len(data) < 4 {
		return nil, layoutErr("insufficient data for unpacking: have %d, want at least 4", len(data))
	}
	if !bytes.Equal(data[:4], e.ID[:]) {
		return nil, fmt.Errorf("%w: invalid identifier, have %#x want %#x", ErrUnknownSelector, data[:4], e.ID[:])
	}
	return e.Inputs.Unpack(data[4:])
}

// revertError is the payload of a plain require/revert with a reason string,
// identified by 0x08c379a0.
var revertError = NewError("Error", Arguments{{Name: "reason", Type: MustNewType("string")}})

// UnpackRevert resolves the reason string of an Error(string) revert payload.
// UnpackRevert 解析 Error(string) 回滚数据中的原因字符串。
func UnpackRevert(data []byte) (string, error) {
	values, err := revertError.Unpack(data)
	if err != nil {
		return "", err
	}
	return values.Index(0).(string), nil
}
