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
	"reflect"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"
)

// pack encodes v according to the type. Static types yield exactly headSize
// bytes, dynamic types yield a self-delimiting, word aligned payload.
// pack 按类型对 v 进行编码。静态类型恰好产生 headSize 个字节，动态类型产生自带长度、按字对齐的数据。
func (t Type) pack(v interface{}) ([]byte, error) {
	switch t.T {
	case IntTy, UintTy:
		n, err := toBig(v)
		if err != nil {
			return nil, err
		}
		return packNum(t, n), nil
	case BoolTy:
		b, ok := v.(bool)
		if !ok {
			return nil, typeErr(t, reflect.TypeOf(v))
		}
		if b {
			return packUint(1), nil
		}
		return packUint(0), nil
	case AddressTy:
		addr, err := toAddress(v)
		if err != nil {
			return nil, err
		}
		return common.LeftPadBytes(addr[:], wordSize), nil
	case FixedBytesTy:
		b, err := toBytes(v)
		if err != nil {
			return nil, err
		}
		if len(b) > t.Size {
			return nil, rangeErr(t, len(b))
		}
		return common.RightPadBytes(b, wordSize), nil
	case BytesTy:
		b, err := toBytes(v)
		if err != nil {
			return nil, err
		}
		return packBytesSlice(b), nil
	case StringTy:
		s, ok := v.(string)
		if !ok {
			return nil, typeErr(t, reflect.TypeOf(v))
		}
		return packBytesSlice([]byte(s)), nil
	case ArrayTy, SliceTy:
		return t.packArray(v)
	default:
		return nil, typeErr(t, reflect.TypeOf(v))
	}
}

// packArray concatenates the element encodings, prefixed by the element count
// for dynamic length arrays.
// packArray 拼接各元素的编码，动态长度数组前面加上元素个数。
func (t Type) packArray(v interface{}) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, typeErr(t, reflect.TypeOf(v))
	}
	var ret []byte
	if t.T == SliceTy {
		ret = packUint(uint64(rv.Len()))
	} else if rv.Len() != t.Size {
		return nil, arityErr(t.String(), rv.Len(), t.Size)
	}
	for i := 0; i < rv.Len(); i++ {
		val, err := t.Elem.pack(rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		ret = append(ret, val...)
	}
	return ret, nil
}

// packBytesSlice packs the given bytes as [L, V] as the canonical representation
// bytes slice.
// packBytesSlice 将给定的字节打包为 [L, V] 格式，作为字节切片的规范表示。
// L 是长度，V 是内容，内容向右填充到 32 字节的倍数。
func packBytesSlice(bytes []byte) []byte {
	l := len(bytes)
	return append(packUint(uint64(l)), common.RightPadBytes(bytes, (l+31)/32*32)...)
}

// packNum masks n to the width of t in two's complement and sign extends signed
// values to the full word. Overflow is truncated, not rejected.
// packNum 以补码形式将 n 截断到 t 的宽度，并将有符号值符号扩展到整个字。溢出会被截断而不是报错。
func packNum(t Type, n *big.Int) []byte {
	z, _ := uint256.FromBig(n)
	if t.Size < 256 {
		z.And(z, widthMask(t.Size))
		if t.T == IntTy {
			z.ExtendSign(z, uint256.NewInt(uint64(t.Size/8-1)))
		}
	}
	word := z.Bytes32()
	return word[:]
}

// packUint encodes a length, count or offset word.
func packUint(n uint64) []byte {
	return math.U256Bytes(new(big.Int).SetUint64(n))
}

// widthMask returns 2^bits - 1.
func widthMask(bits int) *uint256.Int {
	m := new(uint256.Int).Lsh(uint256.NewInt(1), uint(bits))
	return m.SubUint64(m, 1)
}
