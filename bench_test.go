package wire

import "testing"

func BenchmarkWriteUvarint64(b *testing.B) {
	buf := NewBufferSize(nil, 64)
	defer buf.Release()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		WriteUvarint64(buf, uint64(i)*2654435761)
	}
}

func BenchmarkReadUvarint64(b *testing.B) {
	buf := NewBufferSize(nil, 64)
	defer buf.Release()
	WriteUvarint64(buf, 1<<40)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.SetPosition(0)
		if _, err := ReadUvarint64(buf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBufferPrimitives(b *testing.B) {
	buf := NewBufferSize(nil, 256)
	defer buf.Release()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		buf.WriteUint32(uint32(i))
		buf.WriteFloat32(1.5)
		buf.WriteFloat32(-2.5)
		buf.WriteUint64(uint64(i))
	}
}

func BenchmarkWriteDelimited(b *testing.B) {
	msg := samplePlayer()
	buf := NewBufferSize(nil, 256)
	defer buf.Release()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		if err := WriteDelimited(buf, msg, 300); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWriteDelta(b *testing.B) {
	base := samplePlayer()
	changed := &playerState{}
	base.CopyTo(changed)
	changed.Health = 1

	buf := NewBufferSize(nil, 256)
	defer buf.Release()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		if err := changed.WriteDelta(buf, base); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPoolGetPut(b *testing.B) {
	p := NewPool()
	for i := 0; i < b.N; i++ {
		buf := p.Get(512)
		p.Put(buf)
	}
}
