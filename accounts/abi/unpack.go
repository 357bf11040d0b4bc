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

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

var (
	// MaxUint256 is the maximum value that can be represented by a uint256.
	// MaxUint256 是 uint256 能表示的最大值 (2^256 - 1)。
	MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(common.Big1, 256), common.Big1)
	// MaxInt256 is the maximum value that can be represented by a int256.
	// MaxInt256 是 int256 能表示的最大值 (2^255 - 1)。
	MaxInt256 = new(big.Int).Sub(new(big.Int).Lsh(common.Big1, 255), common.Big1)
)

// boolWord is the integer type booleans are read through.
var boolWord = Type{T: UintTy, Size: 8, stringKind: "uint8"}

// unpack decodes a value of type t starting at offset in data and reports how
// many bytes it consumed. Dynamic types are decoded at offset directly; callers
// resolve head offsets before calling.
// unpack 从 data 的 offset 处开始解码一个 t 类型的值，并报告消耗的字节数。
// 动态类型直接在 offset 处解码；调用者需要先解析头部的偏移量。
func (t Type) unpack(data []byte, offset int) (interface{}, int, error) {
	switch t.T {
	case StringTy:
		b, consumed, err := readBytes(data, offset)
		if err != nil {
			return nil, 0, err
		}
		return string(b), consumed, nil
	case BytesTy:
		b, consumed, err := readBytes(data, offset)
		if err != nil {
			return nil, 0, err
		}
		return hexutil.Bytes(b), consumed, nil
	case ArrayTy, SliceTy:
		return t.unpackArray(data, offset)
	}
	word, err := readWord(data, offset)
	if err != nil {
		return nil, 0, err
	}
	switch t.T {
	case IntTy, UintTy:
		return ReadInteger(t, word), wordSize, nil
	case BoolTy:
		return ReadInteger(boolWord, word).Sign() != 0, wordSize, nil
	case AddressTy:
		return common.BytesToAddress(word[12:]), wordSize, nil
	case FixedBytesTy:
		return ReadFixedBytes(t, word), wordSize, nil
	}
	return nil, 0, typeErr("known type", t.T)
}

// unpackArray decodes the elements one after the other, advancing by what each
// element consumed.
// unpackArray 依次解码各元素，每次按元素消耗的字节数前进。
func (t Type) unpackArray(data []byte, offset int) (interface{}, int, error) {
	var (
		size     = t.Size
		consumed int
	)
	if t.T == SliceTy {
		n, err := readLength(data, offset)
		if err != nil {
			return nil, 0, err
		}
		consumed = wordSize
		// Every element takes at least one word, refuse counts the data cannot hold.
		// 每个元素至少占一个字，拒绝数据无法容纳的元素个数。
		if n > (len(data)-offset-wordSize)/wordSize {
			return nil, 0, layoutErr("array of %d elements at %d exceeds data length %d", n, offset, len(data))
		}
		size = n
	}
	values := make([]interface{}, size)
	for i := 0; i < size; i++ {
		v, c, err := t.Elem.unpack(data, offset+consumed)
		if err != nil {
			return nil, 0, err
		}
		values[i] = v
		consumed += c
	}
	return values, consumed, nil
}

// ReadInteger reads an integer word, masking unsigned values and sign extending
// signed ones to the declared width.
// ReadInteger 读取一个整数字：无符号值按声明宽度截断，有符号值按声明宽度进行符号扩展。
func ReadInteger(typ Type, word []byte) *big.Int {
	z := new(uint256.Int).SetBytes32(word)
	if typ.Size < 256 {
		z.And(z, widthMask(typ.Size))
	}
	if typ.T != IntTy {
		return z.ToBig()
	}
	if typ.Size < 256 {
		z.ExtendSign(z, uint256.NewInt(uint64(typ.Size/8-1)))
	}
	if z.Sign() >= 0 {
		return z.ToBig()
	}
	// Negative: the magnitude is the two's complement negation.
	// 负数：其绝对值是补码取反的结果。
	ret := new(uint256.Int).Neg(z).ToBig()
	return ret.Neg(ret)
}

// ReadFixedBytes returns the leading Size bytes of a word.
// ReadFixedBytes 返回字的前 Size 个字节。
func ReadFixedBytes(t Type, word []byte) hexutil.Bytes {
	return common.CopyBytes(word[:t.Size])
}

// readWord returns the 32 bytes at offset.
func readWord(data []byte, offset int) ([]byte, error) {
	if offset < 0 || offset+wordSize > len(data) {
		return nil, layoutErr("word at %d exceeds data length %d", offset, len(data))
	}
	return data[offset : offset+wordSize], nil
}

// readLength interprets the word at offset as a length, count or offset. Any
// value beyond the data length is rejected, no valid encoding can contain it.
// readLength 将 offset 处的字解释为长度、个数或偏移量。超过数据长度的值会被拒绝，因为任何合法编码都不可能包含它。
func readLength(data []byte, offset int) (int, error) {
	word, err := readWord(data, offset)
	if err != nil {
		return 0, err
	}
	n := new(uint256.Int).SetBytes32(word)
	if !n.IsUint64() || n.Uint64() > uint64(len(data)) {
		return 0, layoutErr("value %v at %d exceeds data length %d", n, offset, len(data))
	}
	return int(n.Uint64()), nil
}

// readBytes decodes a [length][payload][padding] block. The padding may be
// missing at the very end of the data.
// readBytes 解码 [长度][内容][填充] 块。在数据末尾时填充可以缺失。
func readBytes(data []byte, offset int) ([]byte, int, error) {
	length, err := readLength(data, offset)
	if err != nil {
		return nil, 0, err
	}
	start := offset + wordSize
	if start+length > len(data) {
		return nil, 0, layoutErr("%d bytes at %d exceed data length %d", length, start, len(data))
	}
	return common.CopyBytes(data[start : start+length]), wordSize + (length+31)/32*32, nil
}

// readOffset resolves a head slot holding the absolute position of a tail payload.
// readOffset 解析头部中保存尾部数据绝对位置的槽。
func readOffset(data []byte, offset int) (int, error) {
	pos, err := readLength(data, offset)
	if err != nil {
		return 0, err
	}
	if pos >= len(data) {
		return 0, layoutErr("offset %d at %d points past data length %d", pos, offset, len(data))
	}
	return pos, nil
}
